// Package rng provides the random source used by round generation and
// sticker draws. Callers inject a Source so tests can pin outcomes.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source produces uniform random values.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a PCG-backed source. A zero seed picks one from the clock.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Sample picks k distinct elements uniformly without replacement. If k
// exceeds len(items) every element is returned in random order. The input
// is not modified.
func Sample[T any](src Source, items []T, k int) []T {
	pool := make([]T, len(items))
	copy(pool, items)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
