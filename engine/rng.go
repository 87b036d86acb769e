package engine

import (
	"math/rand/v2"
)

// RandomSource is the generator the engine draws targets from
// *rand.Rand from math/rand/v2 satisfies it
type RandomSource interface {
	IntN(n int) int
}

// NewSeededSource returns a PCG generator, identical seeds replay identical target sets
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SelectTargets draws n distinct slot ids from [0, slots) without replacement
// The first id drawn is the strike target. n is clamped to [0, slots]
func SelectTargets(rng RandomSource, slots, n int) []int {
	if slots <= 0 || n <= 0 {
		return nil
	}
	if n > slots {
		n = slots
	}

	pool := make([]int, slots)
	for i := range pool {
		pool[i] = i
	}

	// Partial Fisher-Yates: the first n positions become a uniform sample
	for i := 0; i < n; i++ {
		j := i + rng.IntN(slots-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n:n]
}
