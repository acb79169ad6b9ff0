package system

import "math/rand"

// Rand is the source of randomness used by the wave systems.
// A seeded *rand.Rand satisfies it, which keeps replays deterministic.
type Rand interface {
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// NewRand creates a seeded Rand
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RollInclusive returns a uniform integer in [lo, hi]
func RollInclusive(rng Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
