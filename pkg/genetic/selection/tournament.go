package selection

import (
	"fmt"
	"math/rand/v2"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

// Tournament picks every parent as the best of Size contestants drawn
// uniformly with replacement. Size 1 degenerates to uniform random selection.
type Tournament struct {
	// Size is the number of contestants per tournament.
	Size int
	// Rounds is the number of distinct pairs drawn per generation; the pairs
	// are dealt to the offspring slots in turn. Zero draws a fresh pair for
	// every slot.
	Rounds int
}

func (Tournament) Name() string {
	return "tournament"
}

func (Tournament) sealed() {}

func (t Tournament) Validate(fldPath *field.Path, populationSize int, _ bool) field.ErrorList {
	var errs field.ErrorList
	if t.Size < 1 {
		errs = append(errs, field.Invalid(fldPath.Child("size"), t.Size, "must be at least 1"))
	} else if t.Size > populationSize {
		errs = append(errs, field.Invalid(fldPath.Child("size"), t.Size,
			fmt.Sprintf("must not exceed the population size %d", populationSize)))
	}
	if t.Rounds < 0 {
		errs = append(errs, field.Invalid(fldPath.Child("rounds"), t.Rounds, "must be non-negative"))
	}
	return errs
}

func (t Tournament) Select(in Input, count int, rng *rand.Rand) ([]Pair, error) {
	if err := checkInput(t.Name(), in, count); err != nil {
		return nil, err
	}
	if t.Size < 1 {
		return nil, &framework.SelectionError{Selector: t.Name(), Reason: fmt.Sprintf("invalid tournament size %d", t.Size)}
	}
	if count == 0 {
		return []Pair{}, nil
	}

	rounds := t.Rounds
	if rounds == 0 || rounds > count {
		rounds = count
	}
	drawn := make([]Pair, rounds)
	for i := range drawn {
		drawn[i] = Pair{First: t.contest(in.Size, rng), Second: t.contest(in.Size, rng)}
	}
	return deal(drawn, count), nil
}

// contest returns the winning ranked position. Ranked positions are ordered
// best first, so the lowest position wins.
func (t Tournament) contest(size int, rng *rand.Rand) int {
	best := rng.IntN(size)
	for i := 1; i < t.Size; i++ {
		if candidate := rng.IntN(size); candidate < best {
			best = candidate
		}
	}
	return best
}
