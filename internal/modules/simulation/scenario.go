package simulation

import (
	"math"

	"github.com/aristath/plutus/internal/domain"
)

// Scenario bias profiles applied to each asset's simulated monthly return.
const (
	bestMeanMultiplier = 1.5
	bestVolMultiplier  = 0.6

	worstMeanMultiplier = 0.3
	worstMeanPenalty    = 0.0075
	worstVolMultiplier  = 1.25
)

// monthlyReturn computes one month's actual return for an asset under the
// given scenario. mean and vol are the asset's monthly base figures; z is
// one standard-normal draw.
//
//	BEST:    mean × 1.5, vol × 0.6, shock = |z| (never negative)
//	WORST:   mean × 0.3 − 0.0075, vol × 1.25, shock = z
//	AVERAGE: mean, vol, shock = z
//
// The result is clamped to −100%: a single month cannot destroy more value
// than is held.
func monthlyReturn(scenario domain.Scenario, mean, vol, z float64) float64 {
	var adjMean, adjVol, shock float64

	switch scenario {
	case domain.ScenarioBest:
		adjMean = mean * bestMeanMultiplier
		adjVol = vol * bestVolMultiplier
		shock = math.Abs(z)
	case domain.ScenarioWorst:
		adjMean = mean*worstMeanMultiplier - worstMeanPenalty
		adjVol = vol * worstVolMultiplier
		shock = z
	default:
		adjMean = mean
		adjVol = vol
		shock = z
	}

	actual := adjMean + shock*adjVol
	if actual < -1 {
		actual = -1
	}
	return actual
}
