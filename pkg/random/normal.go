package random

import (
	"math"
	"math/rand"
	"time"
)

// ClipSigma bounds a single draw to ±3.5 standard deviations.
// Caps single-period tail risk without meaningfully distorting the
// distribution (P(|Z| > 3.5) ≈ 0.05%).
const ClipSigma = 3.5

// Generator produces standard-normal samples. Simulations accept this
// interface so tests can substitute a seeded or scripted source.
type Generator interface {
	Sample() float64
}

// NormalSource draws clipped standard-normal samples from its own
// uniform source. Each simulation run should own one instance; the
// type is not safe for concurrent use.
type NormalSource struct {
	rng *rand.Rand
}

// NewNormalSource creates a time-seeded normal source.
func NewNormalSource() *NormalSource {
	return NewSeededNormalSource(time.Now().UnixNano())
}

// NewSeededNormalSource creates a normal source with a fixed seed,
// producing a reproducible sample sequence.
func NewSeededNormalSource(seed int64) *NormalSource {
	//nolint:gosec // G404: simulation sampling doesn't require crypto-grade randomness
	return &NormalSource{rng: rand.New(rand.NewSource(seed))}
}

// Sample returns one draw from a standard normal distribution using the
// Box-Muller transform:
//
//	z = sqrt(-2·ln(u)) · cos(2π·v)
//
// Exact-zero uniforms are resampled to avoid the logarithm singularity.
// The result is clipped to [-ClipSigma, ClipSigma].
func (s *NormalSource) Sample() float64 {
	u := s.rng.Float64()
	for u == 0 {
		u = s.rng.Float64()
	}
	v := s.rng.Float64()
	for v == 0 {
		v = s.rng.Float64()
	}

	z := math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)

	if z > ClipSigma {
		return ClipSigma
	}
	if z < -ClipSigma {
		return -ClipSigma
	}
	return z
}
