package auth

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidToken cubre firma inválida, token malformado o expirado.
var ErrInvalidToken = errors.New("invalid token")

// AuthVerifier verifica un token y devuelve claims o ErrInvalidToken (envuelto).
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// SessionIssuer emite tokens firmados para un vet autenticado.
type SessionIssuer interface {
	Issue(ctx context.Context, subject Claims) (token string, expiresAt time.Time, err error)
	TTL() time.Duration
}
