package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// MonthsPerYear is the compounding period count used throughout the engine.
const MonthsPerYear = 12

// Round2 rounds a value to 2 decimal places for display.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Variance(data, nil)
}

// MonthlyReturn converts an annual expected return (geometric mean, decimal)
// to its monthly figure.
func MonthlyReturn(annualReturn float64) float64 {
	return annualReturn / MonthsPerYear
}

// MonthlyVolatility converts an annual volatility to its monthly figure.
// Variance scales linearly with time, so volatility scales with the
// square root of elapsed periods.
func MonthlyVolatility(annualVolatility float64) float64 {
	return annualVolatility / math.Sqrt(MonthsPerYear)
}

// AnnualizedVolatility calculates annualized volatility from monthly returns
// Formula: Std Dev of Monthly Returns × sqrt(12 months)
func AnnualizedVolatility(monthlyReturns []float64) float64 {
	if len(monthlyReturns) == 0 {
		return 0
	}

	return StdDev(monthlyReturns) * math.Sqrt(MonthsPerYear)
}

// CalculateReturns converts a value series to percentage returns
// Returns[i] = (Value[i] - Value[i-1]) / Value[i-1]
func CalculateReturns(values []float64) []float64 {
	if len(values) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] != 0 {
			returns[i-1] = (values[i] - values[i-1]) / values[i-1]
		}
	}

	return returns
}
