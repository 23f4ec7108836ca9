package benchmarks

import (
	"strconv"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

const CountdownName = "Countdown"

// Countdown is the smallest useful individual. Its fitness is the distance of
// I from zero and should be minimized: crossover keeps the smaller value and
// mutation steps one unit towards zero.
type Countdown struct {
	I int64
}

func (c Countdown) Fitness() framework.Int {
	if c.I < 0 {
		return framework.Int(-c.I)
	}
	return framework.Int(c.I)
}

func (c Countdown) Crossover(other Countdown) Countdown {
	return Countdown{I: min(c.I, other.I)}
}

func (c Countdown) Mutate() Countdown {
	switch {
	case c.I > 0:
		return Countdown{I: c.I - 1}
	case c.I < 0:
		return Countdown{I: c.I + 1}
	}
	return c
}

func (c Countdown) FitnessKey() string {
	return strconv.FormatInt(c.I, 10)
}

// NewCountdownPopulation returns size individuals counting up from start.
func NewCountdownPopulation(start int64, size int) []Countdown {
	population := make([]Countdown, size)
	for i := range population {
		population[i] = Countdown{I: start + int64(i)}
	}
	return population
}
