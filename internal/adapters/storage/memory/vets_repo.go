package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"cow-inspection/internal/domain/vets"
	"cow-inspection/internal/platform/apperr"
)

type vetRepo struct {
	mu        sync.RWMutex
	byID      map[string]vets.Vet
	byEmail   map[string]string // email (lower) -> id
	byLicense map[string]string // licenseNumber -> id
}

func NewVetRepo() vets.Repository {
	return &vetRepo{
		byID:      make(map[string]vets.Vet),
		byEmail:   make(map[string]string),
		byLicense: make(map[string]string),
	}
}

func (r *vetRepo) Create(ctx context.Context, v vets.Vet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("vet id required")
	}
	email := strings.ToLower(v.Email)
	if _, exists := r.byEmail[email]; exists {
		return fmt.Errorf("email %q: %w", email, apperr.ErrConflict)
	}
	if _, exists := r.byLicense[v.LicenseNumber]; exists {
		return fmt.Errorf("license %q: %w", v.LicenseNumber, apperr.ErrConflict)
	}

	r.byID[v.ID] = v
	r.byEmail[email] = v.ID
	r.byLicense[v.LicenseNumber] = v.ID
	return nil
}

func (r *vetRepo) GetByID(ctx context.Context, id string) (vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Vet{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *vetRepo) GetByEmail(ctx context.Context, email string) (vets.Vet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return vets.Vet{}, apperr.ErrNotFound
	}
	return r.byID[id], nil
}
