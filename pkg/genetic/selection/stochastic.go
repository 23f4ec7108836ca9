package selection

import (
	"fmt"
	"math/rand/v2"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

// Stochastic draws SampleSize distinct individuals uniformly as a candidate
// pool and pairs them cyclically: (pool[0], pool[1]), (pool[2], pool[3]), ...
// wrapping around the pool. It ignores rank, trading selection pressure for
// diversity.
type Stochastic struct {
	SampleSize int
}

func (Stochastic) Name() string {
	return "stochastic"
}

func (Stochastic) sealed() {}

func (s Stochastic) Validate(fldPath *field.Path, populationSize int, _ bool) field.ErrorList {
	var errs field.ErrorList
	if s.SampleSize < 1 {
		errs = append(errs, field.Invalid(fldPath.Child("sampleSize"), s.SampleSize, "must be at least 1"))
	} else if s.SampleSize > populationSize {
		errs = append(errs, field.Invalid(fldPath.Child("sampleSize"), s.SampleSize,
			fmt.Sprintf("must not exceed the population size %d", populationSize)))
	}
	return errs
}

func (s Stochastic) Select(in Input, count int, rng *rand.Rand) ([]Pair, error) {
	if err := checkInput(s.Name(), in, count); err != nil {
		return nil, err
	}
	if s.SampleSize < 1 || s.SampleSize > in.Size {
		return nil, &framework.SelectionError{
			Selector: s.Name(),
			Reason:   fmt.Sprintf("sample size %d is outside [1, %d]", s.SampleSize, in.Size),
		}
	}

	pool := rng.Perm(in.Size)[:s.SampleSize]
	pairs := make([]Pair, count)
	for i := range pairs {
		pairs[i] = Pair{
			First:  pool[(2*i)%len(pool)],
			Second: pool[(2*i+1)%len(pool)],
		}
	}
	return pairs, nil
}
