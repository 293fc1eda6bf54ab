package dashboard

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/platform/apperr"
)

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

// Stats arma las estadísticas de la región del vet. Sin cache.
func (s *Service) Stats(ctx context.Context, region string) (Stats, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return Stats{}, apperr.Authentication("unauthorized")
	}

	now := s.now()
	sum, err := s.repo.Summary(ctx, region, now.Add(-RecentWindow), now.Add(-OverdueWindow))
	if err != nil {
		return Stats{}, apperr.Internal(err)
	}

	weights, err := s.repo.BreedWeights(ctx, region)
	if err != nil {
		return Stats{}, apperr.Internal(err)
	}

	ages, err := s.repo.AgeCounts(ctx, region)
	if err != nil {
		return Stats{}, apperr.Internal(err)
	}

	return Stats{
		TotalCows:        sum.Total,
		HealthStats:      sum.Health,
		BreedStats:       breedCounts(weights),
		AgeStats:         sortAges(ages),
		InspectionStats:  InspectionStats{Recent: sum.Recent, Overdue: sum.Overdue},
		WeightStats:      sortWeights(weights),
		VaccinationStats: VaccinationStats{Vaccinated: sum.Vaccinated, Unvaccinated: sum.Unvaccinated},
	}, nil
}

// Timeline: inspecciones por día en los últimos days días y la foto actual
// de estados de salud. days <= 0 usa el default; days se topea en MaxTimelineDays.
func (s *Service) Timeline(ctx context.Context, region string, days int) (Timeline, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return Timeline{}, apperr.Authentication("unauthorized")
	}
	if days <= 0 {
		days = DefaultTimelineDays
	}
	if days > MaxTimelineDays {
		days = MaxTimelineDays
	}

	now := s.now()
	perDay, err := s.repo.InspectionsPerDay(ctx, region, now.AddDate(0, 0, -days))
	if err != nil {
		return Timeline{}, apperr.Internal(err)
	}
	sort.Slice(perDay, func(i, j int) bool { return perDay[i].Date < perDay[j].Date })

	// La ventana de recent/overdue no importa acá; solo se usa Health.
	sum, err := s.repo.Summary(ctx, region, now, now)
	if err != nil {
		return Timeline{}, apperr.Internal(err)
	}

	statuses := make([]StatusCount, 0, 3)
	for _, sc := range []StatusCount{
		{Status: cows.HealthHealthy, Count: sum.Health.Healthy},
		{Status: cows.HealthSick, Count: sum.Health.Sick},
		{Status: cows.HealthUnderTreatment, Count: sum.Health.UnderTreatment},
	} {
		if sc.Count > 0 {
			statuses = append(statuses, sc)
		}
	}

	if perDay == nil {
		perDay = []DayCount{}
	}
	return Timeline{Inspections: perDay, HealthStatus: statuses}, nil
}

// NormalizePage aplica defaults y el tope de limit.
func NormalizePage(page, limit int) (int, int) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func (s *Service) ListCows(ctx context.Context, region string, page, limit int) (CowPage, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return CowPage{}, apperr.Authentication("unauthorized")
	}
	page, limit = NormalizePage(page, limit)

	total, err := s.repo.CountCows(ctx, region)
	if err != nil {
		return CowPage{}, apperr.Internal(err)
	}

	list := []CowSummary{}
	// Un offset que desborda int no puede tener vacas: lista vacía.
	if page-1 <= (math.MaxInt-limit)/limit {
		list, err = s.repo.ListCows(ctx, region, (page-1)*limit, limit)
		if err != nil {
			return CowPage{}, apperr.Internal(err)
		}
		if list == nil {
			list = []CowSummary{}
		}
	}

	return CowPage{
		Cows: list,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: (total + limit - 1) / limit,
		},
	}, nil
}

func breedCounts(weights []BreedWeight) []BreedCount {
	out := make([]BreedCount, 0, len(weights))
	for _, w := range weights {
		out = append(out, BreedCount{Breed: w.Breed, Count: w.Count})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Breed < out[j].Breed
	})
	return out
}

func sortWeights(weights []BreedWeight) []BreedWeight {
	out := append([]BreedWeight(nil), weights...)
	if out == nil {
		out = []BreedWeight{}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AvgWeight != out[j].AvgWeight {
			return out[i].AvgWeight > out[j].AvgWeight
		}
		return out[i].Breed < out[j].Breed
	})
	return out
}

func sortAges(ages []AgeCount) []AgeCount {
	order := make(map[string]int, len(AgeBuckets))
	for i, b := range AgeBuckets {
		order[b] = i
	}
	out := make([]AgeCount, 0, len(ages))
	for _, a := range ages {
		if a.Count > 0 {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return order[out[i].Bucket] < order[out[j].Bucket] })
	return out
}
