package selection

import (
	"fmt"
	"math/rand/v2"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

// Input is the read-only view of a ranked generation handed to a Selector.
// Position 0 is the best individual.
type Input struct {
	// Size is the number of ranked individuals.
	Size int
	// Direction the generation was ranked by.
	Direction framework.Direction
	// Scores holds the float64 view of every ranked fitness, best first.
	// It is nil when the fitness type does not implement framework.Real.
	Scores []float64
}

// Pair references the two ranked positions that produce one offspring.
// First is crossed over with Second.
type Pair struct {
	First  int
	Second int
}

// Selector chooses parent pairs from a ranked generation. Selectors hold only
// their own configuration and never modify what they read.
//
// The set of selectors is closed: Tournament, Stochastic, Roulette and
// Truncation.
type Selector interface {
	Name() string
	// Validate checks the configuration against the population it will be
	// used with. weighted reports whether the fitness type implements
	// framework.Real.
	Validate(fldPath *field.Path, populationSize int, weighted bool) field.ErrorList
	// Select returns exactly count pairs.
	Select(in Input, count int, rng *rand.Rand) ([]Pair, error)

	sealed()
}

func checkInput(name string, in Input, count int) error {
	if in.Size <= 0 {
		return &framework.SelectionError{Selector: name, Reason: "ranked population is empty"}
	}
	if count < 0 {
		return &framework.SelectionError{Selector: name, Reason: fmt.Sprintf("invalid pair count %d", count)}
	}
	return nil
}

// deal assigns the drawn pairs to count slots, cycling through them when
// fewer pairs than slots were drawn.
func deal(drawn []Pair, count int) []Pair {
	if len(drawn) == count {
		return drawn
	}
	out := make([]Pair, count)
	for i := range out {
		out[i] = drawn[i%len(drawn)]
	}
	return out
}
