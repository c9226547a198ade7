package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharpeRatio(t *testing.T) {
	tests := []struct {
		name         string
		expectedRet  float64
		riskFreeRate float64
		volatility   float64
		expected     float64
	}{
		{"positive excess", 0.08, 0.02, 0.15, 0.4},
		{"negative excess", 0.01, 0.03, 0.10, -0.2},
		{"zero excess", 0.03, 0.03, 0.20, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SharpeRatio(tt.expectedRet, tt.riskFreeRate, tt.volatility), 1e-12)
		})
	}
}

func TestSharpeRatioZeroVolatility(t *testing.T) {
	assert.True(t, math.IsInf(SharpeRatio(0.05, 0.02, 0), 1))
	assert.True(t, math.IsInf(SharpeRatio(0.01, 0.02, 0), -1))
	assert.Equal(t, 0.0, SharpeRatio(0.02, 0.02, 0))
}

func TestWeightedReturn(t *testing.T) {
	got := WeightedReturn([]float64{0.6, 0.4}, []float64{0.10, 0.05})
	assert.InDelta(t, 0.08, got, 1e-12)
}

func TestBasketVolatilitySingleAsset(t *testing.T) {
	// One asset at full weight is just its own volatility.
	got := BasketVolatility([]float64{1.0}, []float64{0.18}, 0.6)
	assert.InDelta(t, 0.18, got, 1e-12)
}

func TestBasketVolatilityPerfectCorrelation(t *testing.T) {
	// With ρ=1 volatility is the weighted sum of volatilities.
	got := BasketVolatility([]float64{0.5, 0.5}, []float64{0.20, 0.10}, 1.0)
	assert.InDelta(t, 0.15, got, 1e-12)
}

func TestBasketVolatilityDiversification(t *testing.T) {
	full := BasketVolatility([]float64{0.5, 0.5}, []float64{0.20, 0.20}, 1.0)
	partial := BasketVolatility([]float64{0.5, 0.5}, []float64{0.20, 0.20}, 0.6)
	none := BasketVolatility([]float64{0.5, 0.5}, []float64{0.20, 0.20}, 0.0)

	assert.Greater(t, full, partial)
	assert.Greater(t, partial, none)
}

func TestBasketVolatilityNegativeCorrelationFloor(t *testing.T) {
	// ρ=-1 with equal weights/vols cancels to zero variance; floating
	// error must not produce NaN.
	got := BasketVolatility([]float64{0.5, 0.5}, []float64{0.20, 0.20}, -1.0)
	assert.InDelta(t, 0.0, got, 1e-9)
	assert.False(t, math.IsNaN(got))
}

func TestMonthlyConversions(t *testing.T) {
	assert.InDelta(t, 0.01, MonthlyReturn(0.12), 1e-12)
	assert.InDelta(t, 0.12/math.Sqrt(12), MonthlyVolatility(0.12), 1e-12)
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"monotonic growth", []float64{100, 110, 120, 130}, 0.0},
		{"single dip", []float64{100, 120, 90, 110}, 0.25},
		{"full wipeout", []float64{100, 0}, 1.0},
		{"too short", []float64{100}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, MaxDrawdown(tt.values), 1e-12)
		})
	}
}

func TestCalculateReturns(t *testing.T) {
	returns := CalculateReturns([]float64{100, 110, 99})
	assert.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-12)
	assert.InDelta(t, -0.10, returns[1], 1e-12)
}

func TestAnnualizedVolatility(t *testing.T) {
	monthly := []float64{0.01, -0.02, 0.015, 0.005, -0.01, 0.02}
	expected := StdDev(monthly) * math.Sqrt(12)
	assert.InDelta(t, expected, AnnualizedVolatility(monthly), 1e-12)
	assert.Equal(t, 0.0, AnnualizedVolatility(nil))
}
