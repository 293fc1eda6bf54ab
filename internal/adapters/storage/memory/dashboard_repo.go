package memory

import (
	"context"
	"sort"
	"time"

	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/domain/dashboard"
)

// dashboardRepo resuelve las agrupaciones recorriendo las vacas de la región.
type dashboardRepo struct {
	cows *CowRepo
}

func NewDashboardRepo(cowRepo *CowRepo) dashboard.Repository {
	return &dashboardRepo{cows: cowRepo}
}

func (r *dashboardRepo) Summary(ctx context.Context, region string, recentSince, overdueBefore time.Time) (dashboard.Summary, error) {
	var s dashboard.Summary
	for _, c := range r.cows.byRegion(region) {
		s.Total++
		switch c.HealthStatus {
		case cows.HealthHealthy:
			s.Health.Healthy++
		case cows.HealthSick:
			s.Health.Sick++
		case cows.HealthUnderTreatment:
			s.Health.UnderTreatment++
		}
		if !c.LastInspection.Before(recentSince) {
			s.Recent++
		}
		if c.LastInspection.Before(overdueBefore) {
			s.Overdue++
		}
		if len(c.Vaccinations) > 0 {
			s.Vaccinated++
		} else {
			s.Unvaccinated++
		}
	}
	return s, nil
}

func (r *dashboardRepo) BreedWeights(ctx context.Context, region string) ([]dashboard.BreedWeight, error) {
	type acc struct {
		sum   float64
		count int
	}
	byBreed := map[string]*acc{}
	for _, c := range r.cows.byRegion(region) {
		a, ok := byBreed[c.Breed]
		if !ok {
			a = &acc{}
			byBreed[c.Breed] = a
		}
		a.sum += c.Weight
		a.count++
	}

	out := make([]dashboard.BreedWeight, 0, len(byBreed))
	for breed, a := range byBreed {
		out = append(out, dashboard.BreedWeight{
			Breed:     breed,
			AvgWeight: a.sum / float64(a.count),
			Count:     a.count,
		})
	}
	return out, nil
}

func (r *dashboardRepo) AgeCounts(ctx context.Context, region string) ([]dashboard.AgeCount, error) {
	counts := map[string]int{}
	for _, c := range r.cows.byRegion(region) {
		counts[dashboard.AgeBucket(c.Age)]++
	}

	out := make([]dashboard.AgeCount, 0, len(counts))
	for _, b := range dashboard.AgeBuckets {
		if n := counts[b]; n > 0 {
			out = append(out, dashboard.AgeCount{Bucket: b, Count: n})
		}
	}
	return out, nil
}

func (r *dashboardRepo) InspectionsPerDay(ctx context.Context, region string, since time.Time) ([]dashboard.DayCount, error) {
	counts := map[string]int{}
	for _, c := range r.cows.byRegion(region) {
		if c.LastInspection.Before(since) {
			continue
		}
		counts[c.LastInspection.UTC().Format("2006-01-02")]++
	}

	out := make([]dashboard.DayCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, dashboard.DayCount{Date: day, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *dashboardRepo) CountCows(ctx context.Context, region string) (int, error) {
	return len(r.cows.byRegion(region)), nil
}

func (r *dashboardRepo) ListCows(ctx context.Context, region string, offset, limit int) ([]dashboard.CowSummary, error) {
	all := r.cows.byRegion(region)
	sort.Slice(all, func(i, j int) bool {
		if !all[i].LastInspection.Equal(all[j].LastInspection) {
			return all[i].LastInspection.After(all[j].LastInspection)
		}
		return all[i].CowID < all[j].CowID
	})

	if offset < 0 || offset >= len(all) {
		return []dashboard.CowSummary{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	out := make([]dashboard.CowSummary, 0, end-offset)
	for _, c := range all[offset:end] {
		out = append(out, dashboard.CowSummary{
			CowID:          c.CowID,
			Name:           c.Name,
			Breed:          c.Breed,
			Age:            c.Age,
			Weight:         c.Weight,
			HealthStatus:   c.HealthStatus,
			LastInspection: c.LastInspection,
		})
	}
	return out, nil
}
