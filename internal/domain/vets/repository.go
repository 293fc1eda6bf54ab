package vets

import "context"

// Repository es el Credential Store. Create debe fallar con apperr.ErrConflict
// si email o licenseNumber ya existen.
type Repository interface {
	Create(ctx context.Context, v Vet) error
	GetByID(ctx context.Context, id string) (Vet, error)
	GetByEmail(ctx context.Context, email string) (Vet, error)
}
