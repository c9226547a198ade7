package simulation

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/plutus/internal/database"
	"github.com/aristath/plutus/internal/domain"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, EnsureSchema(db.Conn()))

	return NewRepository(db.Conn(), zerolog.Nop())
}

func testRun() *Run {
	return &Run{
		Request: Request{
			InitialInvestment: 10000,
			MonthlyDeposit:    500,
			Assets:            []domain.Asset{{Name: "Equity", ExpectedReturn: 0.07, Volatility: 0.15}},
			RiskFree:          domain.RiskFreeAccount{Name: "Savings", InterestRate: 0.03},
			TargetVolatility:  0.10,
			DurationMonths:    2,
			Scenario:          domain.ScenarioAverage,
			Correlation:       0.6,
		},
		Summary: RunSummary{
			FinalValue:  11200.50,
			Contributed: 11000,
			Gain:        200.50,
			MaxDrawdown: 0.05,
		},
		History: []domain.PortfolioState{
			{Month: 0, Holdings: []domain.Holding{{Asset: "Equity", Value: 6000}}, RiskFree: 4000, Total: 10000, Contributed: 10000},
			{Month: 1, Holdings: []domain.Holding{{Asset: "Equity", Value: 6300}}, RiskFree: 4210, Total: 10510, Contributed: 10500},
			{Month: 2, Holdings: []domain.Holding{{Asset: "Equity", Value: 6700}}, RiskFree: 4500.50, Total: 11200.50, Contributed: 11000},
		},
	}
}

func TestRepositorySaveAndGetByID(t *testing.T) {
	repo := newTestRepo(t)

	run := testRun()
	require.NoError(t, repo.Save(run))
	assert.Positive(t, run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	loaded, err := repo.GetByID(run.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, run.Request, loaded.Request)
	assert.Equal(t, run.Summary, loaded.Summary)
	assert.Equal(t, run.History, loaded.History)
}

func TestRepositoryGetByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	loaded, err := repo.GetByID(999)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRepositoryGetRecent(t *testing.T) {
	repo := newTestRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(testRun()))
	}

	runs, err := repo.GetRecent(3)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Newest first, histories omitted.
	assert.Greater(t, runs[0].ID, runs[1].ID)
	assert.Nil(t, runs[0].History)
	assert.Equal(t, domain.ScenarioAverage, runs[0].Request.Scenario)
}

func TestRepositoryDeleteOlderThan(t *testing.T) {
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(testRun()))
	require.NoError(t, repo.Save(testRun()))

	// Nothing is older than a cutoff in the past.
	deleted, err := repo.DeleteOlderThan(time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = repo.DeleteOlderThan(time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	runs, err := repo.GetRecent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
