package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"cow-inspection/internal/domain/cows"
	"cow-inspection/internal/domain/dashboard"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepo_Summary(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewDashboardRepo(db)

	recent := ts.Add(-30 * 24 * time.Hour)
	overdue := ts.Add(-90 * 24 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta(summaryQuery)).
		WithArgs("North", recent, overdue).
		WillReturnRows(sqlmock.NewRows([]string{"total", "healthy", "sick", "under", "recent", "overdue", "vaccinated"}).
			AddRow(5, 3, 1, 1, 2, 1, 4))

	s, err := repo.Summary(context.Background(), "North", recent, overdue)
	require.NoError(t, err)
	assert.Equal(t, dashboard.Summary{
		Total:        5,
		Health:       dashboard.HealthStats{Healthy: 3, Sick: 1, UnderTreatment: 1},
		Recent:       2,
		Overdue:      1,
		Vaccinated:   4,
		Unvaccinated: 1,
	}, s)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepo_Groupings(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewDashboardRepo(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(breedWeightsQuery)).
		WithArgs("North").
		WillReturnRows(sqlmock.NewRows([]string{"breed", "count", "avg"}).
			AddRow("Holstein", 2, 600.5).
			AddRow("Angus", 1, 700.0))

	mock.ExpectQuery(regexp.QuoteMeta(ageCountsQuery)).
		WithArgs("North").
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "count"}).
			AddRow("8+ years", 1).
			AddRow("0-2 years", 2))

	since := ts.AddDate(0, 0, -30)
	mock.ExpectQuery(regexp.QuoteMeta(inspectionsPerDayQuery)).
		WithArgs("North", since).
		WillReturnRows(sqlmock.NewRows([]string{"day", "count"}).AddRow("2025-02-20", 3))

	weights, err := repo.BreedWeights(ctx, "North")
	require.NoError(t, err)
	assert.Equal(t, []dashboard.BreedWeight{
		{Breed: "Holstein", Count: 2, AvgWeight: 600.5},
		{Breed: "Angus", Count: 1, AvgWeight: 700},
	}, weights)

	ages, err := repo.AgeCounts(ctx, "North")
	require.NoError(t, err)
	assert.Len(t, ages, 2)

	days, err := repo.InspectionsPerDay(ctx, "North", since)
	require.NoError(t, err)
	assert.Equal(t, []dashboard.DayCount{{Date: "2025-02-20", Count: 3}}, days)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepo_ListCows(t *testing.T) {
	db, mock := setupMock(t)
	repo := NewDashboardRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM cows WHERE region = $1`)).
		WithArgs("North").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	mock.ExpectQuery(regexp.QuoteMeta(listCowsQuery)).
		WithArgs("North", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"cow_id", "name", "breed", "age", "weight", "health_status", "last_inspection"}).
			AddRow("COW11", "Zoe", "Jersey", 2.0, 410.0, "under_treatment", ts))

	total, err := repo.CountCows(context.Background(), "North")
	require.NoError(t, err)
	assert.Equal(t, 11, total)

	list, err := repo.ListCows(context.Background(), "North", 10, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, cows.HealthUnderTreatment, list[0].HealthStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}
