package vets

import (
	"context"
	"errors"
	"strings"
	"time"

	"cow-inspection/internal/platform/apperr"
	"cow-inspection/internal/ports/auth"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
)

const (
	MinPasswordLength = 6
	// bcrypt no acepta más de 72 bytes.
	MaxPasswordLength = 72
)

var (
	ErrAlreadyExists      = apperr.Conflict("Vet with this email or license number already exists")
	ErrInvalidCredentials = apperr.Authentication("Invalid credentials")
	ErrInactive           = apperr.Authentication("Invalid credentials or account inactive")
	ErrNotFound           = apperr.NotFound("vet not found")
)

// PasswordHasher abstrae bcrypt para poder usar un costo bajo en tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type Service struct {
	repo   Repository
	hasher PasswordHasher
	now    func() time.Time
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Email         string
	Password      string
	Name          string
	Region        string
	LicenseNumber string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Vet, error) {
	email := NormalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	region := strings.TrimSpace(in.Region)
	license := strings.TrimSpace(in.LicenseNumber)

	switch {
	case email == "" || !govalidator.IsEmail(email) || !govalidator.StringLength(email, "3", "254"):
		return Vet{}, apperr.Validation("a valid email is required")
	case len(in.Password) < MinPasswordLength:
		return Vet{}, apperr.Validation("password must be at least 6 characters")
	case len(in.Password) > MaxPasswordLength:
		return Vet{}, apperr.Validation("password must be at most 72 bytes")
	case name == "" || region == "" || license == "":
		return Vet{}, apperr.Validation("name, region and licenseNumber are required")
	case !govalidator.StringLength(name, "1", "200"):
		return Vet{}, apperr.Validation("name must be at most 200 characters")
	case !govalidator.StringLength(region, "1", "100"):
		return Vet{}, apperr.Validation("region must be at most 100 characters")
	case !govalidator.StringLength(license, "1", "100"):
		return Vet{}, apperr.Validation("licenseNumber must be at most 100 characters")
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Vet{}, apperr.Internal(err)
	}

	now := s.now()
	v := Vet{
		ID:            uuid.NewString(),
		Email:         email,
		PasswordHash:  hash,
		Name:          name,
		Region:        region,
		LicenseNumber: license,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return Vet{}, ErrAlreadyExists
		}
		return Vet{}, apperr.Internal(err)
	}
	return v, nil
}

// Authenticate valida credenciales. Vet inexistente o inactivo => ErrInactive;
// password incorrecto => ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Vet, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return Vet{}, ErrInactive
	}

	v, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Vet{}, ErrInactive
		}
		return Vet{}, apperr.Internal(err)
	}
	if !v.IsActive {
		return Vet{}, ErrInactive
	}

	if err := s.hasher.Compare(v.PasswordHash, password); err != nil {
		return Vet{}, ErrInvalidCredentials
	}
	return v, nil
}

// GetActive resuelve el vet de una sesión. Inactivo cuenta como no encontrado.
func (s *Service) GetActive(ctx context.Context, id string) (Vet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Vet{}, ErrNotFound
	}
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Vet{}, ErrNotFound
		}
		return Vet{}, apperr.Internal(err)
	}
	if !v.IsActive {
		return Vet{}, ErrNotFound
	}
	return v, nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ResolvePrincipal implementa middleware.PrincipalResolver.
func (s *Service) ResolvePrincipal(ctx context.Context, vetID string) (auth.Principal, error) {
	v, err := s.GetActive(ctx, vetID)
	if err != nil {
		return auth.Principal{}, err
	}
	return auth.Principal{
		VetID:         v.ID,
		Email:         v.Email,
		Name:          v.Name,
		Region:        v.Region,
		LicenseNumber: v.LicenseNumber,
	}, nil
}
