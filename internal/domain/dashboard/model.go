package dashboard

import (
	"time"

	"cow-inspection/internal/domain/cows"
)

// Ventanas y defaults fijos. No son configurables.
const (
	RecentWindow  = 30 * 24 * time.Hour
	OverdueWindow = 90 * 24 * time.Hour

	DefaultTimelineDays = 30
	MaxTimelineDays     = 3650

	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Buckets de edad en orden. [0,2) [2,5) [5,8) [8,inf)
var AgeBuckets = []string{"0-2 years", "2-5 years", "5-8 years", "8+ years"}

func AgeBucket(age float64) string {
	switch {
	case age < 2:
		return AgeBuckets[0]
	case age < 5:
		return AgeBuckets[1]
	case age < 8:
		return AgeBuckets[2]
	default:
		return AgeBuckets[3]
	}
}

type HealthStats struct {
	Healthy        int `json:"healthy"`
	Sick           int `json:"sick"`
	UnderTreatment int `json:"underTreatment"`
}

func (h HealthStats) Total() int { return h.Healthy + h.Sick + h.UnderTreatment }

type BreedCount struct {
	Breed string `json:"breed"`
	Count int    `json:"count"`
}

type AgeCount struct {
	Bucket string `json:"bucket"`
	Count  int    `json:"count"`
}

type InspectionStats struct {
	Recent  int `json:"recent"`
	Overdue int `json:"overdue"`
}

type BreedWeight struct {
	Breed     string  `json:"breed"`
	AvgWeight float64 `json:"avgWeight"`
	Count     int     `json:"count"`
}

type VaccinationStats struct {
	Vaccinated   int `json:"vaccinated"`
	Unvaccinated int `json:"unvaccinated"`
}

// Stats es la salida del agregador para una región. Se calcula en cada llamada.
type Stats struct {
	TotalCows        int              `json:"totalCows"`
	HealthStats      HealthStats      `json:"healthStats"`
	BreedStats       []BreedCount     `json:"breedStats"`
	AgeStats         []AgeCount       `json:"ageStats"`
	InspectionStats  InspectionStats  `json:"inspectionStats"`
	WeightStats      []BreedWeight    `json:"weightStats"`
	VaccinationStats VaccinationStats `json:"vaccinationStats"`
}

// Summary son los conteos que el store resuelve en una sola lectura,
// así total y salud salen del mismo instante.
type Summary struct {
	Total        int
	Health       HealthStats
	Recent       int
	Overdue      int
	Vaccinated   int
	Unvaccinated int
}

type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD (UTC)
	Count int    `json:"count"`
}

type StatusCount struct {
	Status cows.HealthStatus `json:"status"`
	Count  int               `json:"count"`
}

type Timeline struct {
	Inspections  []DayCount    `json:"inspections"`
	HealthStatus []StatusCount `json:"healthStatus"`
}

// CowSummary es la fila del listado del dashboard (sin vacunas ni historial).
type CowSummary struct {
	CowID          string            `json:"cowId"`
	Name           string            `json:"name"`
	Breed          string            `json:"breed"`
	Age            float64           `json:"age"`
	Weight         float64           `json:"weight"`
	HealthStatus   cows.HealthStatus `json:"healthStatus"`
	LastInspection time.Time         `json:"lastInspection"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type CowPage struct {
	Cows       []CowSummary
	Pagination Pagination
}
