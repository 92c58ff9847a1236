package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Range returns a value in [min, max).
func (r *RNG) Range(min, max float64) float64 {
	return min + r.r.Float64()*(max-min)
}

// Int64 returns a non-negative pseudo-random int64, used to derive seeds.
func (r *RNG) Int64() int64 { return r.r.Int64() }
