package benchmarks

import (
	"math/rand/v2"
	"strconv"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

const ParabolaName = "Parabola"

// Parabola searches the maximum of f(x) = 10 - (x+3)^2, found at (-3, 10).
type Parabola struct {
	X float64

	src source
}

func (p Parabola) Fitness() framework.Float {
	return framework.Float(10 - (p.X+3)*(p.X+3))
}

// Crossover averages both parents.
func (p Parabola) Crossover(other Parabola) Parabola {
	return Parabola{X: (p.X + other.X) / 2, src: p.src}
}

// Mutate shifts x by a uniform offset in [-1, 1). Larger offsets make the
// search overshoot the optimum.
func (p Parabola) Mutate() Parabola {
	return Parabola{X: p.X + 2*p.src.Float64() - 1, src: p.src}
}

func (p Parabola) FitnessKey() string {
	return strconv.FormatFloat(p.X, 'g', -1, 64)
}

func (p Parabola) String() string {
	return "{X:" + p.FitnessKey() + "}"
}

// NewParabolaPopulation spreads size individuals over consecutive integers
// centred on zero. Mutations draw from rng, or from the global source when
// rng is nil.
func NewParabolaPopulation(size int, rng *rand.Rand) []Parabola {
	population := make([]Parabola, size)
	for i := range population {
		population[i] = Parabola{X: float64(i - size/2), src: source{rng: rng}}
	}
	return population
}
