package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/platform/apperr"
)

// CowRepo guarda vacas en memoria. El dashboard repo lee del mismo mapa.
type CowRepo struct {
	mu      sync.RWMutex
	byCowID map[string]cows.Cow
}

func NewCowRepo() *CowRepo {
	return &CowRepo{
		byCowID: make(map[string]cows.Cow),
	}
}

func (r *CowRepo) Create(ctx context.Context, c cows.Cow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.CowID) == "" {
		return errors.New("cow id required")
	}
	if _, exists := r.byCowID[c.CowID]; exists {
		return fmt.Errorf("cow %q: %w", c.CowID, apperr.ErrConflict)
	}
	r.byCowID[c.CowID] = cloneCow(c)
	return nil
}

func (r *CowRepo) GetByCowID(ctx context.Context, cowID string) (cows.Cow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byCowID[cowID]
	if !ok {
		return cows.Cow{}, apperr.ErrNotFound
	}
	return cloneCow(c), nil
}

func (r *CowRepo) AppendVaccination(ctx context.Context, cowID string, v cows.Vaccination, at time.Time) ([]cows.Vaccination, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byCowID[cowID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	c.Vaccinations = append(cloneVaccinations(c.Vaccinations), cloneVaccination(v))
	c.UpdatedAt = at
	r.byCowID[cowID] = c
	return cloneVaccinations(c.Vaccinations), nil
}

func (r *CowRepo) AppendMedicalEntry(ctx context.Context, cowID string, e cows.MedicalEntry, at time.Time) ([]cows.MedicalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.byCowID[cowID]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	c.MedicalHistory = append(append([]cows.MedicalEntry(nil), c.MedicalHistory...), e)
	c.UpdatedAt = at
	r.byCowID[cowID] = c
	return append([]cows.MedicalEntry(nil), c.MedicalHistory...), nil
}

// byRegion devuelve copias de las vacas de una región.
func (r *CowRepo) byRegion(region string) []cows.Cow {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cows.Cow, 0)
	for _, c := range r.byCowID {
		if c.Region == region {
			out = append(out, cloneCow(c))
		}
	}
	return out
}

// Las copias evitan que un caller mute el estado guardado a través de slices o punteros compartidos.
func cloneCow(c cows.Cow) cows.Cow {
	c.Vaccinations = cloneVaccinations(c.Vaccinations)
	c.MedicalHistory = append([]cows.MedicalEntry(nil), c.MedicalHistory...)
	if c.MedicalHistory == nil {
		c.MedicalHistory = []cows.MedicalEntry{}
	}
	return c
}

func cloneVaccinations(in []cows.Vaccination) []cows.Vaccination {
	out := make([]cows.Vaccination, 0, len(in))
	for _, v := range in {
		out = append(out, cloneVaccination(v))
	}
	return out
}

func cloneVaccination(v cows.Vaccination) cows.Vaccination {
	if v.NextDue != nil {
		t := *v.NextDue
		v.NextDue = &t
	}
	return v
}
