package cows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cow-inspection/internal/platform/apperr"
	"cow-inspection/internal/ports/auth"
)

var (
	ErrNotFound      = apperr.NotFound("Cow not found")
	ErrAlreadyExists = apperr.Conflict("a cow with this cowId already exists")
)

// ErrRegionMismatch arma el 403 de creación/escritura fuera de la región del vet.
func ErrRegionMismatch(vetRegion string) error {
	return apperr.Authorization(fmt.Sprintf("You can only create cows in your region (%s)", vetRegion))
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// CreateInput: Age/Weight son punteros para distinguir "no enviado" de 0.
type CreateInput struct {
	CowID  string
	Name   string
	Breed  string
	Age    *float64
	Weight *float64

	Region       string // opcional; si viene debe coincidir con la del vet
	HealthStatus string // opcional; default healthy

	LastInspection *time.Time

	Vaccinations   []Vaccination
	MedicalHistory []MedicalEntry
}

// Register crea la vaca en la región del vet. Nunca en otra.
func (s *Service) Register(ctx context.Context, vet auth.Principal, in CreateInput) (Cow, error) {
	if strings.TrimSpace(vet.VetID) == "" || strings.TrimSpace(vet.Region) == "" {
		return Cow{}, apperr.Authentication("unauthorized")
	}

	if region := strings.TrimSpace(in.Region); region != "" && region != vet.Region {
		return Cow{}, ErrRegionMismatch(vet.Region)
	}

	cowID := strings.TrimSpace(in.CowID)
	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)

	var missing []string
	if cowID == "" {
		missing = append(missing, "cowId")
	}
	if name == "" {
		missing = append(missing, "name")
	}
	if breed == "" {
		missing = append(missing, "breed")
	}
	if in.Age == nil {
		missing = append(missing, "age")
	}
	if in.Weight == nil {
		missing = append(missing, "weight")
	}
	if len(missing) > 0 {
		return Cow{}, apperr.Validation("missing required fields: " + strings.Join(missing, ", "))
	}
	if *in.Age < 0 {
		return Cow{}, apperr.Validation("age must be >= 0")
	}
	if *in.Weight <= 0 {
		return Cow{}, apperr.Validation("weight must be > 0")
	}

	status := HealthHealthy
	if hs := strings.TrimSpace(in.HealthStatus); hs != "" {
		status = HealthStatus(hs)
		if !status.Valid() {
			return Cow{}, apperr.Validation("healthStatus must be one of healthy, sick, under_treatment")
		}
	}

	now := s.now()
	lastInspection := now
	if in.LastInspection != nil && !in.LastInspection.IsZero() {
		lastInspection = *in.LastInspection
	}

	vaccinations := make([]Vaccination, 0, len(in.Vaccinations))
	for _, v := range in.Vaccinations {
		nv, err := normalizeVaccination(v)
		if err != nil {
			return Cow{}, err
		}
		vaccinations = append(vaccinations, nv)
	}

	history := make([]MedicalEntry, 0, len(in.MedicalHistory))
	for _, e := range in.MedicalHistory {
		ne, err := normalizeMedicalEntry(e, vet.Name)
		if err != nil {
			return Cow{}, err
		}
		history = append(history, ne)
	}

	c := Cow{
		CowID:          cowID,
		Name:           name,
		Breed:          breed,
		Age:            *in.Age,
		Weight:         *in.Weight,
		Region:         vet.Region,
		HealthStatus:   status,
		LastInspection: lastInspection,
		Vaccinations:   vaccinations,
		MedicalHistory: history,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return Cow{}, ErrAlreadyExists
		}
		return Cow{}, apperr.Internal(err)
	}
	return c, nil
}

// Find devuelve la vaca sin chequear región. Solo para uso detrás del gate.
func (s *Service) Find(ctx context.Context, cowID string) (Cow, error) {
	cowID = strings.TrimSpace(cowID)
	if cowID == "" {
		return Cow{}, ErrNotFound
	}
	c, err := s.repo.GetByCowID(ctx, cowID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return Cow{}, ErrNotFound
		}
		return Cow{}, apperr.Internal(err)
	}
	return c, nil
}

// LookupRegion implementa middleware.RegionLookup.
// Se usa para evitar ciclos de imports entre middleware y cows.
func (s *Service) LookupRegion(ctx context.Context, cowID string) (any, string, bool, error) {
	c, err := s.Find(ctx, cowID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", false, nil
		}
		return nil, "", false, err
	}
	return c, c.Region, true, nil
}

type VaccinationInput struct {
	Name    string
	Date    time.Time
	NextDue *time.Time
}

// AddVaccination agrega una vacuna al ledger de la vaca. Se permiten repetidas.
func (s *Service) AddVaccination(ctx context.Context, vet auth.Principal, target Cow, in VaccinationInput) ([]Vaccination, error) {
	v, err := normalizeVaccination(Vaccination{Name: in.Name, Date: in.Date, NextDue: in.NextDue})
	if err != nil {
		return nil, err
	}
	if err := checkRegion(vet, target); err != nil {
		return nil, err
	}

	out, err := s.repo.AppendVaccination(ctx, target.CowID, v, s.now())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Internal(err)
	}
	return out, nil
}

type MedicalEntryInput struct {
	Date         time.Time
	Diagnosis    string
	Treatment    string
	Veterinarian string // default: nombre del vet que registra
}

func (s *Service) AddMedicalEntry(ctx context.Context, vet auth.Principal, target Cow, in MedicalEntryInput) ([]MedicalEntry, error) {
	e, err := normalizeMedicalEntry(MedicalEntry{
		Date:         in.Date,
		Diagnosis:    in.Diagnosis,
		Treatment:    in.Treatment,
		Veterinarian: in.Veterinarian,
	}, vet.Name)
	if err != nil {
		return nil, err
	}
	if err := checkRegion(vet, target); err != nil {
		return nil, err
	}

	out, err := s.repo.AppendMedicalEntry(ctx, target.CowID, e, s.now())
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperr.Internal(err)
	}
	return out, nil
}

func checkRegion(vet auth.Principal, target Cow) error {
	if strings.TrimSpace(target.CowID) == "" {
		return ErrNotFound
	}
	if target.Region != vet.Region {
		return apperr.Authorization(fmt.Sprintf(
			"Access denied. You can only access cows in your region (%s). This cow is in region: %s",
			vet.Region, target.Region,
		))
	}
	return nil
}

func normalizeVaccination(v Vaccination) (Vaccination, error) {
	v.Name = strings.TrimSpace(v.Name)
	if v.Name == "" || v.Date.IsZero() {
		return Vaccination{}, apperr.Validation("vaccination name and date are required")
	}
	if v.NextDue != nil && v.NextDue.IsZero() {
		v.NextDue = nil
	}
	return v, nil
}

func normalizeMedicalEntry(e MedicalEntry, defaultVet string) (MedicalEntry, error) {
	e.Diagnosis = strings.TrimSpace(e.Diagnosis)
	e.Treatment = strings.TrimSpace(e.Treatment)
	e.Veterinarian = strings.TrimSpace(e.Veterinarian)
	if e.Diagnosis == "" || e.Date.IsZero() {
		return MedicalEntry{}, apperr.Validation("medical entry date and diagnosis are required")
	}
	if e.Veterinarian == "" {
		e.Veterinarian = strings.TrimSpace(defaultVet)
	}
	return e, nil
}
