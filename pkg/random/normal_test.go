package random

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeededNormalSource(42)
	b := NewSeededNormalSource(42)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Sample(), b.Sample(), "draw %d diverged", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewSeededNormalSource(1)
	b := NewSeededNormalSource(2)

	same := true
	for i := 0; i < 100; i++ {
		if a.Sample() != b.Sample() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds produced identical sequences")
}

func TestSamplesAreClipped(t *testing.T) {
	src := NewSeededNormalSource(7)

	for i := 0; i < 100000; i++ {
		z := src.Sample()
		require.LessOrEqual(t, z, ClipSigma)
		require.GreaterOrEqual(t, z, -ClipSigma)
	}
}

func TestSampleDistribution(t *testing.T) {
	src := NewSeededNormalSource(99)

	n := 200000
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = src.Sample()
	}

	mean := stat.Mean(samples, nil)
	stdDev := stat.StdDev(samples, nil)

	// Clipping at ±3.5σ barely shifts the moments.
	assert.InDelta(t, 0.0, mean, 0.01)
	assert.InDelta(t, 1.0, stdDev, 0.01)
}

func TestSampleIsFinite(t *testing.T) {
	src := NewSeededNormalSource(3)
	for i := 0; i < 10000; i++ {
		z := src.Sample()
		require.False(t, math.IsNaN(z) || math.IsInf(z, 0))
	}
}
