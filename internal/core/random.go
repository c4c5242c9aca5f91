package core

import "math/rand"

// Random is the source of randomness for simulations.
// Intn returns a uniformly distributed integer in the inclusive range [lo, hi].
type Random interface {
	Intn(lo, hi int) int
}

// SeededRandom is the default Random backed by a seeded math/rand source.
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom creates a deterministic random source for the given seed.
func NewRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [lo, hi]. Swapped bounds are tolerated.
func (r *SeededRandom) Intn(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

// OneIn rolls a 1-in-n chance. n <= 1 always succeeds.
func OneIn(r Random, n int) bool {
	if n <= 1 {
		return true
	}
	return r.Intn(1, n) == 1
}
