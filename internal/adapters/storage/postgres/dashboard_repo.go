package postgres

import (
	"context"
	"database/sql"
	"time"

	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/domain/dashboard"
)

// DashboardRepo resuelve las agrupaciones del dashboard en SQL.
type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

const summaryQuery = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE health_status = 'healthy'),
			COUNT(*) FILTER (WHERE health_status = 'sick'),
			COUNT(*) FILTER (WHERE health_status = 'under_treatment'),
			COUNT(*) FILTER (WHERE last_inspection >= $2),
			COUNT(*) FILTER (WHERE last_inspection < $3),
			COUNT(*) FILTER (WHERE jsonb_array_length(vaccinations) > 0)
		FROM cows
		WHERE region = $1
	`

func (r *DashboardRepo) Summary(ctx context.Context, region string, recentSince, overdueBefore time.Time) (dashboard.Summary, error) {
	var s dashboard.Summary
	err := r.db.QueryRowContext(ctx, summaryQuery, region, recentSince, overdueBefore).Scan(
		&s.Total,
		&s.Health.Healthy,
		&s.Health.Sick,
		&s.Health.UnderTreatment,
		&s.Recent,
		&s.Overdue,
		&s.Vaccinated,
	)
	if err != nil {
		return dashboard.Summary{}, err
	}
	s.Unvaccinated = s.Total - s.Vaccinated
	return s, nil
}

const breedWeightsQuery = `
		SELECT breed, COUNT(*), AVG(weight)::float8
		FROM cows
		WHERE region = $1
		GROUP BY breed
	`

func (r *DashboardRepo) BreedWeights(ctx context.Context, region string) ([]dashboard.BreedWeight, error) {
	rows, err := r.db.QueryContext(ctx, breedWeightsQuery, region)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.BreedWeight, 0)
	for rows.Next() {
		var bw dashboard.BreedWeight
		if err := rows.Scan(&bw.Breed, &bw.Count, &bw.AvgWeight); err != nil {
			return nil, err
		}
		out = append(out, bw)
	}
	return out, rows.Err()
}

// Los límites del CASE son los mismos que dashboard.AgeBucket.
const ageCountsQuery = `
		SELECT bucket, COUNT(*)
		FROM (
			SELECT CASE
				WHEN age < 2 THEN '0-2 years'
				WHEN age < 5 THEN '2-5 years'
				WHEN age < 8 THEN '5-8 years'
				ELSE '8+ years'
			END AS bucket
			FROM cows
			WHERE region = $1
		) b
		GROUP BY bucket
	`

func (r *DashboardRepo) AgeCounts(ctx context.Context, region string) ([]dashboard.AgeCount, error) {
	rows, err := r.db.QueryContext(ctx, ageCountsQuery, region)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.AgeCount, 0, len(dashboard.AgeBuckets))
	for rows.Next() {
		var ac dashboard.AgeCount
		if err := rows.Scan(&ac.Bucket, &ac.Count); err != nil {
			return nil, err
		}
		out = append(out, ac)
	}
	return out, rows.Err()
}

const inspectionsPerDayQuery = `
		SELECT to_char(last_inspection AT TIME ZONE 'UTC', 'YYYY-MM-DD') AS day, COUNT(*)
		FROM cows
		WHERE region = $1 AND last_inspection >= $2
		GROUP BY day
		ORDER BY day
	`

func (r *DashboardRepo) InspectionsPerDay(ctx context.Context, region string, since time.Time) ([]dashboard.DayCount, error) {
	rows, err := r.db.QueryContext(ctx, inspectionsPerDayQuery, region, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.DayCount, 0)
	for rows.Next() {
		var dc dashboard.DayCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) CountCows(ctx context.Context, region string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cows WHERE region = $1`, region).Scan(&n)
	return n, err
}

const listCowsQuery = `
		SELECT cow_id, name, breed, age, weight, health_status, last_inspection
		FROM cows
		WHERE region = $1
		ORDER BY last_inspection DESC, cow_id
		LIMIT $2 OFFSET $3
	`

func (r *DashboardRepo) ListCows(ctx context.Context, region string, offset, limit int) ([]dashboard.CowSummary, error) {
	rows, err := r.db.QueryContext(ctx, listCowsQuery, region, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]dashboard.CowSummary, 0, limit)
	for rows.Next() {
		var (
			cs     dashboard.CowSummary
			status string
		)
		if err := rows.Scan(&cs.CowID, &cs.Name, &cs.Breed, &cs.Age, &cs.Weight, &status, &cs.LastInspection); err != nil {
			return nil, err
		}
		cs.HealthStatus = cows.HealthStatus(status)
		out = append(out, cs)
	}
	return out, rows.Err()
}
