package framework

import (
	"fmt"
	"slices"
)

// Ranked is an individual together with its fitness and its position in the
// population it was ranked from.
type Ranked[T any, F any] struct {
	Individual T
	Fitness    F
	Index      int
}

// Population is an ordered, fixed-size collection of individuals.
// Individuals are never modified in place; a new generation replaces the
// previous one as a whole.
type Population[T Individual[T, F], F Fitness[F]] struct {
	members []T
	// fitness caches the evaluation of the current members.
	fitness []F
}

// NewPopulation creates a population holding a copy of members.
func NewPopulation[T Individual[T, F], F Fitness[F]](members []T) *Population[T, F] {
	return &Population[T, F]{
		members: slices.Clone(members),
	}
}

// Len returns the number of individuals in the population.
func (p *Population[T, F]) Len() int {
	return len(p.members)
}

// Members returns a copy of the current individuals in population order.
func (p *Population[T, F]) Members() []T {
	return slices.Clone(p.members)
}

// Fitness evaluates every member in population order. Each member is
// evaluated at most once per generation.
func (p *Population[T, F]) Fitness(eval Evaluator[T, F]) []F {
	if p.fitness == nil {
		if eval == nil {
			eval = DirectEvaluator[T, F]{}
		}
		p.fitness = make([]F, len(p.members))
		for i, m := range p.members {
			p.fitness[i] = eval.Evaluate(m)
		}
	}
	return slices.Clone(p.fitness)
}

// Rank orders the population from best to worst according to d.
//
// The sort is stable: individuals with equal fitness keep their population
// order, so the earlier individual always ranks higher.
func (p *Population[T, F]) Rank(d Direction, eval Evaluator[T, F]) []Ranked[T, F] {
	fitness := p.Fitness(eval)
	ranked := make([]Ranked[T, F], len(p.members))
	for i, m := range p.members {
		ranked[i] = Ranked[T, F]{Individual: m, Fitness: fitness[i], Index: i}
	}
	slices.SortStableFunc(ranked, func(a, b Ranked[T, F]) int {
		return CompareFitness(d, a.Fitness, b.Fitness)
	})
	return ranked
}

// Replace swaps in the next generation. The population size never changes.
func (p *Population[T, F]) Replace(next []T) error {
	if len(next) != len(p.members) {
		return fmt.Errorf("next generation has %d individuals, want %d", len(next), len(p.members))
	}
	p.members = slices.Clone(next)
	p.fitness = nil
	return nil
}
