package cows

import "time"

// HealthStatus del animal.
// @Enum healthy, sick, under_treatment
type HealthStatus string

const (
	HealthHealthy        HealthStatus = "healthy"
	HealthSick           HealthStatus = "sick"
	HealthUnderTreatment HealthStatus = "under_treatment"
)

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthHealthy, HealthSick, HealthUnderTreatment:
		return true
	default:
		return false
	}
}

// Vaccination es una entrada del ledger de vacunas (solo se agrega, nunca se edita).
type Vaccination struct {
	Name    string
	Date    time.Time
	NextDue *time.Time
}

// MedicalEntry es una entrada del historial clínico (append-only).
type MedicalEntry struct {
	Date         time.Time
	Diagnosis    string
	Treatment    string
	Veterinarian string
}

// Cow es el registro principal. CowID lo asigna el vet y es único global.
// Region queda fija a la región del vet que la registró.
type Cow struct {
	CowID  string
	Name   string
	Breed  string
	Age    float64 // años
	Weight float64 // kg

	Region       string
	HealthStatus HealthStatus

	LastInspection time.Time

	Vaccinations   []Vaccination
	MedicalHistory []MedicalEntry

	CreatedAt time.Time
	UpdatedAt time.Time
}
