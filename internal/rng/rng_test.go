package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Deterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestSample_Distinct(t *testing.T) {
	src := New(7)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for i := 0; i < 100; i++ {
		got := Sample(src, items, 5)
		assert.Len(t, got, 5)
		seen := map[int]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "duplicate %d in sample", v)
			seen[v] = true
		}
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items, "input must not change")
}

func TestSample_ShortPool(t *testing.T) {
	got := Sample(New(1), []string{"a", "b"}, 5)
	assert.ElementsMatch(t, []string{"a", "b"}, got)
}

func TestShuffle_Uniform(t *testing.T) {
	src := New(99)
	const trials = 30000
	counts := make([]int, 4)
	for i := 0; i < trials; i++ {
		items := []int{0, 1, 2, 3}
		Shuffle(src, items)
		for pos, v := range items {
			if v == 0 {
				counts[pos]++
			}
		}
	}
	for pos, c := range counts {
		frac := float64(c) / trials
		if frac < 0.23 || frac > 0.27 {
			t.Errorf("position %d held element 0 %.3f of the time, want ~0.25", pos, frac)
		}
	}
}

func TestSequence(t *testing.T) {
	s := &Sequence{Floats: []float64{0.5, 0.1}, Ints: []int{7, -1}}
	assert.Equal(t, 0.5, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.0, s.Float64())
	assert.Equal(t, 1, s.IntN(3))
	assert.Equal(t, 2, s.IntN(3))
	assert.Equal(t, 0, s.IntN(3))
}
