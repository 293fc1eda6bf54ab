package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCowRepo_CreateConflict(t *testing.T) {
	repo := NewCowRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, cows.Cow{CowID: "COW1", Region: "North"}))
	err := repo.Create(ctx, cows.Cow{CowID: "COW1", Region: "South"})
	assert.ErrorIs(t, err, apperr.ErrConflict)

	_, err = repo.GetByCowID(ctx, "COW2")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCowRepo_ReturnsCopies(t *testing.T) {
	repo := NewCowRepo()
	ctx := context.Background()

	due := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, cows.Cow{
		CowID:        "COW1",
		Vaccinations: []cows.Vaccination{{Name: "FMD", NextDue: &due}},
	}))

	got, err := repo.GetByCowID(ctx, "COW1")
	require.NoError(t, err)
	got.Vaccinations[0].Name = "mutated"
	*got.Vaccinations[0].NextDue = time.Time{}

	again, err := repo.GetByCowID(ctx, "COW1")
	require.NoError(t, err)
	assert.Equal(t, "FMD", again.Vaccinations[0].Name)
	assert.Equal(t, due, *again.Vaccinations[0].NextDue)
}

func TestCowRepo_ConcurrentAppendsKeepEveryEntry(t *testing.T) {
	repo := NewCowRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, cows.Cow{CowID: "COW1"}))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.AppendVaccination(ctx, "COW1", cows.Vaccination{Name: fmt.Sprintf("v%d", i)}, time.Now())
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	c, err := repo.GetByCowID(ctx, "COW1")
	require.NoError(t, err)
	assert.Len(t, c.Vaccinations, n)
}

func TestCowRepo_AppendKeepsPriorEntries(t *testing.T) {
	repo := NewCowRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, cows.Cow{CowID: "COW1"}))

	at := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	first, err := repo.AppendMedicalEntry(ctx, "COW1", cows.MedicalEntry{Diagnosis: "a"}, at)
	require.NoError(t, err)
	second, err := repo.AppendMedicalEntry(ctx, "COW1", cows.MedicalEntry{Diagnosis: "b"}, at.Add(time.Hour))
	require.NoError(t, err)

	require.Len(t, second, 2)
	assert.Equal(t, first[0], second[0])
	assert.Equal(t, "b", second[1].Diagnosis)

	c, err := repo.GetByCowID(ctx, "COW1")
	require.NoError(t, err)
	assert.Equal(t, at.Add(time.Hour), c.UpdatedAt)

	_, err = repo.AppendVaccination(ctx, "MISSING", cows.Vaccination{}, at)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
