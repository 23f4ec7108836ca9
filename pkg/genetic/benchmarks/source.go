package benchmarks

import "math/rand/v2"

// source feeds the variation operators of an individual. A population built
// from one *rand.Rand shares it between all its members, so evolving it with
// the same seed replays the same run. Without a generator the global
// math/rand/v2 source is used.
//
// The generator is not safe for concurrent use, and neither are individuals
// sharing it.
type source struct {
	rng *rand.Rand
}

func (s source) IntN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

func (s source) Float64() float64 {
	if s.rng == nil {
		return rand.Float64()
	}
	return s.rng.Float64()
}
