package engine

import "math/rand/v2"

// RNG is the session's seeded random source. Every word draw and cast goes
// through it, so a seed replays the same session.
type RNG struct {
	seed  int64
	src   *rand.Rand
	draws int64
}

// NewRNG creates an RNG over a PCG stream derived from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewPCG(uint64(seed), 0x686f6f6b6c696e65)),
	}
}

// Intn returns a value in [0, n). It satisfies wordbank.Picker.
func (r *RNG) Intn(n int) int {
	r.draws++
	return r.src.IntN(n)
}

// Weighted returns an index into weights chosen with probability
// proportional to its weight. Weights below 1 count as 1.
func (r *RNG) Weighted(weights []int) int {
	total := 0
	for _, w := range weights {
		total += max(w, 1)
	}
	roll := r.Intn(total)
	for i, w := range weights {
		roll -= max(w, 1)
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Draws returns how many values have been drawn.
func (r *RNG) Draws() int64 {
	return r.draws
}
