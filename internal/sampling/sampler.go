// Package sampling provides a seeded random source for synthetic data.
// Every generator draws from an explicit Sampler so runs are reproducible
// and independent runs can proceed in parallel.
package sampling

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws values from common distributions using one seeded stream.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// New creates a sampler seeded with seed.
func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// unit returns a uniform draw in the open interval (0, 1).
func (s *Sampler) unit() float64 {
	for {
		u := s.rng.Float64()
		if u > 0 {
			return u
		}
	}
}

// Normal draws from N(mean, stddev²).
func (s *Sampler) Normal(mean, stddev float64) float64 {
	if stddev <= 0 {
		return mean
	}
	return distuv.Normal{Mu: mean, Sigma: stddev}.Quantile(s.unit())
}

// Weibull draws from a Weibull distribution with the given shape and scale.
// A zero scale always yields 0.
func (s *Sampler) Weibull(shape, scale float64) float64 {
	if scale <= 0 {
		return 0
	}
	return distuv.Weibull{K: shape, Lambda: scale}.Quantile(s.unit())
}

// IntBetween draws a uniform integer in [lo, hi] (both inclusive).
func (s *Sampler) IntBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// IntRange draws a uniform integer in [lo, hi). Returns lo when the range is empty.
func (s *Sampler) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo)
}

// FloatRange draws a uniform integer-valued amount in [lo, hi).
// Used for currency figures that are whole IDR.
func (s *Sampler) FloatRange(lo, hi float64) float64 {
	span := int64(hi - lo)
	if span <= 0 {
		return lo
	}
	return lo + float64(s.rng.Int63n(span))
}
