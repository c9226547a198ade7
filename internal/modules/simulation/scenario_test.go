package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aristath/plutus/internal/domain"
	"github.com/aristath/plutus/pkg/formulas"
	"github.com/aristath/plutus/pkg/random"
)

func TestMonthlyReturnAverageIsIdentity(t *testing.T) {
	mean := formulas.MonthlyReturn(0.08)
	vol := formulas.MonthlyVolatility(0.18)

	got := monthlyReturn(domain.ScenarioAverage, mean, vol, 1.2)
	assert.InDelta(t, mean+1.2*vol, got, 1e-12)
}

func TestMonthlyReturnBestShockNeverNegative(t *testing.T) {
	mean := formulas.MonthlyReturn(0.08)
	vol := formulas.MonthlyVolatility(0.18)
	adjustedMean := mean * bestMeanMultiplier

	src := random.NewSeededNormalSource(11)
	for i := 0; i < 10000; i++ {
		got := monthlyReturn(domain.ScenarioBest, mean, vol, src.Sample())
		assert.GreaterOrEqual(t, got, adjustedMean, "BEST shock went negative")
	}
}

func TestMonthlyReturnClampedToFullLoss(t *testing.T) {
	// A huge downside shock cannot destroy more than the holding.
	got := monthlyReturn(domain.ScenarioWorst, 0.005, 10.0, -3.5)
	assert.Equal(t, -1.0, got)
}

func TestMonthlyReturnScenarioMeansAreOrdered(t *testing.T) {
	mean := formulas.MonthlyReturn(0.08)
	vol := formulas.MonthlyVolatility(0.18)

	n := 100000
	sums := map[domain.Scenario]float64{}
	for _, scenario := range []domain.Scenario{domain.ScenarioBest, domain.ScenarioAverage, domain.ScenarioWorst} {
		src := random.NewSeededNormalSource(202)
		total := 0.0
		for i := 0; i < n; i++ {
			total += monthlyReturn(scenario, mean, vol, src.Sample())
		}
		sums[scenario] = total / float64(n)
	}

	assert.Greater(t, sums[domain.ScenarioBest], sums[domain.ScenarioAverage])
	assert.Greater(t, sums[domain.ScenarioAverage], sums[domain.ScenarioWorst])
}
