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

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// Scatter visits every coordinate of a w*h grid in row-major order and calls
// fn for the ones selected with probability density.
func (r *RNG) Scatter(w, h int, density float64, fn func(x, y int)) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Chance(density) {
				fn(x, y)
			}
		}
	}
}
