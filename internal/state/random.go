package state

import "math/rand"

// Random wraps a seeded RNG so a game's shuffles and coin flips are
// reproducible from the journal's recorded seed, the way the teacher's
// shuffle uses math/rand but anchored to a per-game source instead of
// the unseeded global one — replay determinism requires it.
type Random struct {
	Seed int64
	rng  *rand.Rand
}

// NewRandom seeds a fresh Random.
func NewRandom(seed int64) *Random {
	return &Random{Seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Shuffle randomizes the order of a slice of length n in place, using
// swap to exchange the i-th and j-th elements.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}

// Intn returns a pseudo-random int in [0, n).
func (r *Random) Intn(n int) int {
	return r.rng.Intn(n)
}
