package benchmarks

import (
	"math/rand/v2"
	"strings"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

const OneMaxName = "OneMax"

// OneMax uses a binary encoding and is maximized by setting every bit.
type OneMax struct {
	Bits []bool
	// MutationRate is the probability of flipping each bit.
	MutationRate float64

	src source
}

func NewOneMax(bits []bool, mutationRate float64) *OneMax {
	return &OneMax{
		Bits:         bits,
		MutationRate: mutationRate,
	}
}

func (s *OneMax) Clone() *OneMax {
	newBits := make([]bool, len(s.Bits))
	copy(newBits, s.Bits)
	return &OneMax{
		Bits:         newBits,
		MutationRate: s.MutationRate,
		src:          s.src,
	}
}

// Fitness counts the bits that are set.
func (s *OneMax) Fitness() framework.Int {
	var ones framework.Int
	for _, b := range s.Bits {
		if b {
			ones++
		}
	}
	return ones
}

// Crossover uses single-point crossover: the child keeps the receiver's bits
// up to a random point and the other parent's bits from there on.
func (s *OneMax) Crossover(other *OneMax) *OneMax {
	child := s.Clone()
	if len(s.Bits) == 0 {
		return child
	}
	point := s.src.IntN(len(s.Bits))
	for i := point; i < len(child.Bits) && i < len(other.Bits); i++ {
		child.Bits[i] = other.Bits[i]
	}
	return child
}

// Mutate uses bit-flip mutation.
func (s *OneMax) Mutate() *OneMax {
	child := s.Clone()
	for i := range child.Bits {
		if s.src.Float64() < s.MutationRate {
			child.Bits[i] = !child.Bits[i]
		}
	}
	return child
}

func (s *OneMax) String() string {
	return s.FitnessKey()
}

func (s *OneMax) FitnessKey() string {
	var sb strings.Builder
	sb.Grow(len(s.Bits))
	for _, b := range s.Bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// NewOneMaxPopulation creates size random bitstrings of the given length.
// The mutation rate defaults to one flip per individual on average. Variation
// keeps drawing from rng.
func NewOneMaxPopulation(size, length int, rng *rand.Rand) []*OneMax {
	rate := 0.0
	if length > 0 {
		rate = 1 / float64(length)
	}
	population := make([]*OneMax, size)
	for i := range population {
		bits := make([]bool, length)
		for j := range bits {
			bits[j] = rng.IntN(2) == 1
		}
		population[i] = NewOneMax(bits, rate)
		population[i].src = source{rng: rng}
	}
	return population
}
