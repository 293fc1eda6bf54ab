package dashboard

import (
	"context"
	"time"
)

// Repository son las consultas de agrupación sobre el Animal Record Store.
// Todas filtran por región. El orden de salida lo define el Service.
type Repository interface {
	// Summary: recent = lastInspection >= recentSince; overdue = lastInspection < overdueBefore.
	Summary(ctx context.Context, region string, recentSince, overdueBefore time.Time) (Summary, error)

	// BreedWeights agrupa por raza: cantidad y peso promedio.
	BreedWeights(ctx context.Context, region string) ([]BreedWeight, error)

	// AgeCounts devuelve solo buckets con al menos una vaca (etiquetas de AgeBuckets).
	AgeCounts(ctx context.Context, region string) ([]AgeCount, error)

	// InspectionsPerDay cuenta vacas por día (UTC) de lastInspection desde since.
	InspectionsPerDay(ctx context.Context, region string, since time.Time) ([]DayCount, error)

	CountCows(ctx context.Context, region string) (int, error)

	// ListCows ordena por lastInspection desc.
	ListCows(ctx context.Context, region string, offset, limit int) ([]CowSummary, error)
}
