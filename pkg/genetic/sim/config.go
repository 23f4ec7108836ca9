package sim

import (
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic/pkg/genetic/selection"
)

// Config holds everything needed to build a Simulator. It is consumed by New
// and has no further use afterwards.
type Config[T framework.Individual[T, F], F framework.Fitness[F]] struct {
	// Population is the initial generation. Mandatory.
	Population []T
	// Selector chooses the parents of every offspring. Mandatory.
	Selector selection.Selector
	// Direction tells whether higher or lower fitness is better. Mandatory.
	Direction framework.Direction

	// MaxIterations caps the number of generations. Zero evaluates the
	// initial population without evolving it.
	MaxIterations *uint64
	// ConvergenceThreshold stops the run once the best known fitness improves
	// by less than this value for ConvergencePatience consecutive generations.
	ConvergenceThreshold *F
	// ConvergencePatience defaults to 1.
	ConvergencePatience uint64

	// Seed drives parent selection (0 for random seed). Crossover and
	// mutation draw from whatever randomness the individuals carry.
	Seed uint64
	// Collectors are notified before and after every generation.
	Collectors []StatsCollector[F]
	// CacheFitness memoizes fitness across generations for individuals
	// implementing framework.Keyer.
	CacheFitness bool
	// Clock measures elapsed time. Defaults to the real clock.
	Clock clock.PassiveClock
}

// Validate returns every problem with the configuration.
func (c *Config[T, F]) Validate() field.ErrorList {
	var errs field.ErrorList

	if len(c.Population) == 0 {
		errs = append(errs, field.Required(field.NewPath("population"), "must contain at least one individual"))
	}

	selectorPath := field.NewPath("selector")
	if c.Selector == nil {
		errs = append(errs, field.Required(selectorPath, "a selector must be chosen"))
	} else if len(c.Population) > 0 {
		errs = append(errs, c.Selector.Validate(selectorPath, len(c.Population), framework.IsReal[F]())...)
		if _, ok := c.Selector.(selection.Roulette); ok && len(c.Population) == 1 && c.Direction == framework.Minimize {
			errs = append(errs, field.Invalid(selectorPath, c.Selector.Name(),
				"a single individual has no roulette weight when minimizing"))
		}
	}

	if !c.Direction.Valid() {
		errs = append(errs, field.NotSupported(field.NewPath("direction"), c.Direction.String(), framework.Directions))
	}

	if c.MaxIterations == nil && c.ConvergenceThreshold == nil {
		errs = append(errs, field.Required(field.NewPath("maxIterations"),
			"maxIterations or convergenceThreshold must be set for the run to terminate"))
	}
	if c.ConvergenceThreshold != nil {
		threshold := *c.ConvergenceThreshold
		if threshold.Compare(threshold.Zero()) <= 0 {
			errs = append(errs, field.Invalid(field.NewPath("convergenceThreshold"), threshold, "must be greater than zero"))
		}
	}
	return errs
}
