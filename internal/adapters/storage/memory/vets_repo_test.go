package memory

import (
	"context"
	"testing"

	"cow-inspection/internal/domain/vets"
	"cow-inspection/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVetRepo_Uniqueness(t *testing.T) {
	repo := NewVetRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, vets.Vet{ID: "1", Email: "ana@farm.example", LicenseNumber: "L1"}))

	err := repo.Create(ctx, vets.Vet{ID: "2", Email: "ANA@farm.example", LicenseNumber: "L2"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	err = repo.Create(ctx, vets.Vet{ID: "3", Email: "bob@farm.example", LicenseNumber: "L1"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	v, err := repo.GetByEmail(ctx, "Ana@Farm.Example")
	require.NoError(t, err)
	assert.Equal(t, "1", v.ID)

	_, err = repo.GetByID(ctx, "3")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
