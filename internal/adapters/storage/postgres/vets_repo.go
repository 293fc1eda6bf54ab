package postgres

import (
	"context"
	"database/sql"
	"strings"

	"cow-inspection/internal/domain/vets"
	"cow-inspection/internal/platform/apperr"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

const vetColumns = `id, email, password_hash, name, region, license_number, is_active, created_at, updated_at`

func (r *VetsRepo) Create(ctx context.Context, v vets.Vet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO vets (`+vetColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		v.ID,
		v.Email,
		v.PasswordHash,
		v.Name,
		v.Region,
		v.LicenseNumber,
		v.IsActive,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return mapError(err)
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Vet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Vet{}, apperr.ErrNotFound
	}
	return scanVet(r.db.QueryRowContext(ctx, `SELECT `+vetColumns+` FROM vets WHERE id = $1`, id))
}

func (r *VetsRepo) GetByEmail(ctx context.Context, email string) (vets.Vet, error) {
	return scanVet(r.db.QueryRowContext(ctx, `SELECT `+vetColumns+` FROM vets WHERE lower(email) = lower($1)`, email))
}

func scanVet(row *sql.Row) (vets.Vet, error) {
	var v vets.Vet
	if err := row.Scan(
		&v.ID,
		&v.Email,
		&v.PasswordHash,
		&v.Name,
		&v.Region,
		&v.LicenseNumber,
		&v.IsActive,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return vets.Vet{}, mapError(err)
	}
	return v, nil
}
