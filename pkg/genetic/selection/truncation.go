package selection

import (
	"fmt"
	"math/rand/v2"

	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

// Truncation keeps only the Count best ranked individuals and pairs them in
// rank order: (1st, 2nd), (3rd, 4th), ... The ranking already honours the
// fitness direction, so the same selector serves maximization and
// minimization.
type Truncation struct {
	Count int
}

func (Truncation) Name() string {
	return "truncation"
}

func (Truncation) sealed() {}

func (t Truncation) Validate(fldPath *field.Path, populationSize int, _ bool) field.ErrorList {
	var errs field.ErrorList
	switch {
	case t.Count < 2:
		errs = append(errs, field.Invalid(fldPath.Child("count"), t.Count, "must be at least 2"))
	case t.Count%2 != 0:
		errs = append(errs, field.Invalid(fldPath.Child("count"), t.Count, "must be even"))
	case t.Count > populationSize:
		errs = append(errs, field.Invalid(fldPath.Child("count"), t.Count,
			fmt.Sprintf("must not exceed the population size %d", populationSize)))
	}
	return errs
}

func (t Truncation) Select(in Input, count int, _ *rand.Rand) ([]Pair, error) {
	if err := checkInput(t.Name(), in, count); err != nil {
		return nil, err
	}
	if t.Count < 2 || t.Count%2 != 0 || t.Count > in.Size {
		return nil, &framework.SelectionError{
			Selector: t.Name(),
			Reason:   fmt.Sprintf("count %d must be even and within [2, %d]", t.Count, in.Size),
		}
	}
	if count == 0 {
		return []Pair{}, nil
	}

	drawn := make([]Pair, t.Count/2)
	for i := range drawn {
		drawn[i] = Pair{First: 2 * i, Second: 2*i + 1}
	}
	return deal(drawn, count), nil
}
