// Package session emite y verifica tokens de sesión firmados (JWT HS256).
//
// No hay estado del lado del servidor: un token es válido mientras la firma
// verifique y no haya expirado. Logout solo borra la cookie del cliente.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cow-inspection/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultTTL = 24 * time.Hour
	Issuer     = "cow-inspection"
)

var (
	ErrEmptySecret = errors.New("session: signing secret is empty")
	ErrTokenEmpty  = errors.New("session: token is empty")
)

type tokenClaims struct {
	VetID  string `json:"vetId"`
	Email  string `json:"email"`
	Region string `json:"region"`
	jwt.RegisteredClaims
}

// Manager implementa auth.SessionIssuer y auth.AuthVerifier.
type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Config struct {
	Secret string
	TTL    time.Duration // <= 0 => DefaultTTL
}

func NewManager(cfg Config) (*Manager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, ErrEmptySecret
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (m *Manager) TTL() time.Duration { return m.ttl }

func (m *Manager) Issue(_ context.Context, subject auth.Claims) (string, time.Time, error) {
	if strings.TrimSpace(subject.VetID) == "" {
		return "", time.Time{}, errors.New("session: vet id required")
	}

	now := m.now()
	exp := now.Add(m.ttl)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		VetID:  subject.VetID,
		Email:  subject.Email,
		Region: subject.Region,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.VetID,
			Issuer:    Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	})

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("session: sign: %w", err)
	}
	return signed, exp, nil
}

func (m *Manager) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, ErrTokenEmpty)
	}

	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return auth.Claims{}, fmt.Errorf("%w: expired", auth.ErrInvalidToken)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	if !parsed.Valid || strings.TrimSpace(tc.VetID) == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	out := auth.Claims{
		VetID:  tc.VetID,
		Email:  tc.Email,
		Region: tc.Region,
	}
	if tc.ExpiresAt != nil {
		out.ExpiresAt = tc.ExpiresAt.Time
	}
	return out, nil
}
