package middleware

import (
	"context"
	"errors"
	"net/http"

	"cow-inspection/internal/platform/apperr"
	"cow-inspection/internal/ports/auth"
)

type ctxKey string

const (
	claimsKey    ctxKey = "claims"
	principalKey ctxKey = "principal"
	resourceKey  ctxKey = "resource"
)

// Razones de falla de autenticación (label de métricas y logs).
const (
	ReasonMissingToken = "missing_token"
	ReasonInvalidToken = "invalid_token"
	ReasonUnknownVet   = "unknown_vet"
)

var errUnauthenticated = apperr.Authentication("Access denied. Please log in.")

// PrincipalResolver resuelve el vet activo de una sesión.
// Debe devolver un error de kind NotFound si no existe o está inactivo.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, vetID string) (auth.Principal, error)
}

// Authenticate es la primera etapa del gate:
// cookie => Verify() => vet activo => claims + principal en el contexto.
func Authenticate(verifier auth.AuthVerifier, resolver PrincipalResolver) Stage {
	return func(r *http.Request) (*http.Request, error) {
		token := sessionToken(r)
		if token == "" {
			return nil, &Failure{Reason: ReasonMissingToken, Err: errUnauthenticated}
		}

		claims, err := verifier.Verify(r.Context(), token)
		if err != nil {
			return nil, &Failure{Reason: ReasonInvalidToken, Err: errUnauthenticated, Cause: err}
		}

		p, err := resolver.ResolvePrincipal(r.Context(), claims.VetID)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindNotFound {
				return nil, &Failure{Reason: ReasonUnknownVet, VetID: claims.VetID, Err: errUnauthenticated, Cause: err}
			}
			return nil, err
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		ctx = context.WithValue(ctx, principalKey, p)
		return r.WithContext(ctx), nil
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func GetPrincipal(ctx context.Context) (auth.Principal, bool) {
	v := ctx.Value(principalKey)
	if v == nil {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok && p.VetID != ""
}

// WithPrincipal se usa en tests de handlers que no pasan por el gate.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// Failure describe por qué una etapa del gate cortó el request.
type Failure struct {
	Reason string
	VetID  string // vet ya autenticado, si la etapa lo conocía
	Err    error  // error público (apperr)
	Cause  error  // detalle interno, solo para logs
}

func (f *Failure) Error() string {
	if f.Cause != nil {
		return f.Reason + ": " + f.Cause.Error()
	}
	return f.Reason
}

func (f *Failure) Unwrap() error { return f.Err }

func failureReason(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return ""
}

func failureVetID(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.VetID
	}
	return ""
}
