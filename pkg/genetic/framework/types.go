package framework

import "fmt"

// Fitness describes the contract a fitness value needs to implement.
// Values must form a total order and are never mutated once produced.
type Fitness[F any] interface {
	// Compare returns a negative number when the receiver is less than the
	// argument, zero when they are equal and a positive number otherwise.
	Compare(F) int
	// AbsDiff returns the absolute difference between two fitness values.
	AbsDiff(F) F
	// Zero returns the designated zero value of the fitness type.
	Zero() F
}

// Real is implemented by fitness values that have a float64 view.
// Fitness-proportionate selection needs it to derive selection weights.
type Real interface {
	Float64() float64
}

// RealFitness is a Fitness that also exposes a float64 view.
type RealFitness[F any] interface {
	Fitness[F]
	Real
}

// Individual describes the contract a candidate solution needs to implement.
// T is the concrete type of the individual itself.
//
// Crossover and Mutate return new individuals; neither the receiver nor the
// argument may be modified, since the engine reuses parents across offspring.
type Individual[T any, F Fitness[F]] interface {
	Fitness() F
	Crossover(T) T
	Mutate() T
}

// Keyer is implemented by individuals that can be identified by a stable key.
// Two individuals with the same key must have the same fitness.
type Keyer interface {
	FitnessKey() string
}

// Direction tells whether higher or lower fitness is better.
type Direction int

const (
	// Maximize ranks the highest fitness first.
	Maximize Direction = iota + 1
	// Minimize ranks the lowest fitness first.
	Minimize
)

// Directions lists the supported directions by name.
var Directions = []string{Maximize.String(), Minimize.String()}

func (d Direction) String() string {
	switch d {
	case Maximize:
		return "Maximize"
	case Minimize:
		return "Minimize"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Maximize or Minimize.
func (d Direction) Valid() bool {
	return d == Maximize || d == Minimize
}

// ParseDirection converts a direction name into a Direction.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "Maximize":
		return Maximize, nil
	case "Minimize":
		return Minimize, nil
	}
	return 0, fmt.Errorf("unknown fitness direction %q", name)
}

// CompareFitness orders a and b best first according to d: the result is
// negative when a is better than b.
func CompareFitness[F Fitness[F]](d Direction, a, b F) int {
	if d == Maximize {
		return b.Compare(a)
	}
	return a.Compare(b)
}

// IsReal reports whether the fitness type F exposes a float64 view.
func IsReal[F any]() bool {
	var zero F
	_, ok := any(zero).(Real)
	return ok
}
