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

// Reseed restarts the stream from the provided seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Chance reports true with the given percentage probability in [0, 100].
func (r *RNG) Chance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return r.r.IntN(100) < pct
}

// Span returns a signed offset drawn uniformly from [-n, n].
func (r *RNG) Span(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(2*n+1) - n
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
