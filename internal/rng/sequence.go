package rng

// Sequence is a deterministic Source that replays fixed values. Floats and
// ints are consumed from separate queues; once a queue is drained it keeps
// returning zero.
type Sequence struct {
	Floats []float64
	Ints   []int

	fi, ii int
}

// Float64 returns the next queued float.
func (s *Sequence) Float64() float64 {
	if s.fi >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.fi]
	s.fi++
	return v
}

// IntN returns the next queued int reduced modulo n.
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to IntN")
	}
	if s.ii >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.ii] % n
	s.ii++
	if v < 0 {
		v += n
	}
	return v
}
