package vets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"cow-inspection/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test doubles
// -------------------------

type testRepo struct {
	byID map[string]Vet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Vet{}}
}

func (r *testRepo) Create(ctx context.Context, v Vet) error {
	for _, existing := range r.byID {
		if existing.Email == v.Email || existing.LicenseNumber == v.LicenseNumber {
			return fmt.Errorf("repo: %w", apperr.ErrConflict)
		}
	}
	r.byID[v.ID] = v
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Vet, error) {
	v, ok := r.byID[id]
	if !ok {
		return Vet{}, apperr.ErrNotFound
	}
	return v, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (Vet, error) {
	for _, v := range r.byID {
		if v.Email == email {
			return v, nil
		}
	}
	return Vet{}, apperr.ErrNotFound
}

// plainHasher evita el costo de bcrypt en tests de servicio.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }
func (plainHasher) Compare(h, p string) error {
	if h != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo, plainHasher{})
	svc.now = func() time.Time { return time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func validInput() RegisterInput {
	return RegisterInput{
		Email:         "  Ana@Farm.Example ",
		Password:      "secret1",
		Name:          "Ana",
		Region:        "North",
		LicenseNumber: "LIC-001",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Register_NormalizesAndHashes(t *testing.T) {
	svc, repo := newTestService()

	v, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "ana@farm.example", v.Email)
	assert.True(t, v.IsActive)
	assert.Equal(t, "North", v.Region)
	assert.NotEqual(t, "secret1", v.PasswordHash)
	assert.True(t, strings.HasPrefix(v.PasswordHash, "hashed:"))

	stored, err := repo.GetByID(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, v, stored)
}

func TestService_Register_Validation(t *testing.T) {
	svc, _ := newTestService()

	cases := map[string]func(*RegisterInput){
		"bad email":       func(in *RegisterInput) { in.Email = "not-an-email" },
		"short password":  func(in *RegisterInput) { in.Password = "12345" },
		"missing name":    func(in *RegisterInput) { in.Name = " " },
		"missing region":  func(in *RegisterInput) { in.Region = "" },
		"missing license": func(in *RegisterInput) { in.LicenseNumber = "" },
		"long password":   func(in *RegisterInput) { in.Password = strings.Repeat("p", 73) },
		"long name":       func(in *RegisterInput) { in.Name = strings.Repeat("n", 201) },
		"long license":    func(in *RegisterInput) { in.LicenseNumber = strings.Repeat("L", 101) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.Register(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestService_Register_LengthMessagesNameTheField(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.Password = strings.Repeat("p", 80)
	_, err := svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, "password must be at most 72 bytes", err.Error())

	in = validInput()
	in.Region = strings.Repeat("r", 101)
	_, err = svc.Register(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, "region must be at most 100 characters", err.Error())
}

func TestService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.Email = "ANA@farm.example"
	dup.LicenseNumber = "LIC-002"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestService_Register_DuplicateLicense(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.Email = "other@farm.example"
	_, err = svc.Register(context.Background(), dup)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Authenticate(t *testing.T) {
	svc, repo := newTestService()
	v, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), "ANA@farm.example", "secret1")
	require.NoError(t, err)
	assert.Equal(t, v.ID, got.ID)

	_, err = svc.Authenticate(context.Background(), "ana@farm.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(context.Background(), "ghost@farm.example", "secret1")
	assert.ErrorIs(t, err, ErrInactive)

	// Inactivo no puede autenticarse aunque el password sea correcto.
	v.IsActive = false
	repo.byID[v.ID] = v
	_, err = svc.Authenticate(context.Background(), "ana@farm.example", "secret1")
	assert.ErrorIs(t, err, ErrInactive)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))
}

func TestService_ResolvePrincipal(t *testing.T) {
	svc, repo := newTestService()
	v, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	p, err := svc.ResolvePrincipal(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, v.ID, p.VetID)
	assert.Equal(t, "North", p.Region)
	assert.Equal(t, "LIC-001", p.LicenseNumber)

	_, err = svc.ResolvePrincipal(context.Background(), "missing")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	v.IsActive = false
	repo.byID[v.ID] = v
	_, err = svc.ResolvePrincipal(context.Background(), v.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
