package field

import "math/rand"

// constSource always returns the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// seqSource cycles through a fixed list of values.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func seeded() Source {
	return rand.New(rand.NewSource(42))
}
