package formulas

import "math"

// SharpeRatio calculates the ex-ante Sharpe ratio of a single asset or basket.
//
// Sharpe Ratio Formula:
//
//	Sharpe = (Expected Return - Risk-free Rate) / Volatility
//
// When volatility is zero the ratio is 0 for zero excess return and
// ±Inf signed by the excess return otherwise.
func SharpeRatio(expectedReturn, riskFreeRate, volatility float64) float64 {
	excess := expectedReturn - riskFreeRate
	if volatility == 0 {
		if excess == 0 {
			return 0
		}
		return math.Inf(sign(excess))
	}
	return excess / volatility
}

// WeightedReturn calculates the expected return of a weighted basket.
// Weights and returns must be index-aligned.
func WeightedReturn(weights, returns []float64) float64 {
	var total float64
	for i := range weights {
		total += weights[i] * returns[i]
	}
	return total
}

// BasketVolatility calculates the volatility of a weighted basket under a
// single shared pairwise correlation.
//
// Variance Formula:
//
//	Var = Σ wi²σi² + 2·Σ_{i<j} wi·wj·σi·σj·ρ
//
// This is a simplifying approximation, not a full covariance matrix: every
// asset pair shares the same correlation ρ.
func BasketVolatility(weights, volatilities []float64, correlation float64) float64 {
	var variance float64
	for i := range weights {
		variance += weights[i] * weights[i] * volatilities[i] * volatilities[i]
	}
	for i := 0; i < len(weights); i++ {
		for j := i + 1; j < len(weights); j++ {
			variance += 2 * weights[i] * weights[j] * volatilities[i] * volatilities[j] * correlation
		}
	}

	// Shared-correlation variance can go fractionally negative at ρ ≈ -1
	// through floating error.
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

func sign(x float64) int {
	if x < 0 {
		return -1
	}
	return 1
}
