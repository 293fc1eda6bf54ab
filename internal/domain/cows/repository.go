package cows

import (
	"context"
	"time"
)

// Repository es el Animal Record Store.
// - Create devuelve apperr.ErrConflict si el cowId ya existe.
// - Los Append* son atómicos sobre un solo documento y devuelven la lista completa resultante.
type Repository interface {
	Create(ctx context.Context, c Cow) error
	GetByCowID(ctx context.Context, cowID string) (Cow, error)
	AppendVaccination(ctx context.Context, cowID string, v Vaccination, at time.Time) ([]Vaccination, error)
	AppendMedicalEntry(ctx context.Context, cowID string, e MedicalEntry, at time.Time) ([]MedicalEntry, error)
}
