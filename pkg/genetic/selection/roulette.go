package selection

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

// Roulette picks parents with probability proportional to a non-negative
// weight derived from their fitness, drawing with replacement. See Weights
// for the fixed fitness to weight transform.
type Roulette struct{}

func (Roulette) Name() string {
	return "roulette"
}

func (Roulette) sealed() {}

func (r Roulette) Validate(fldPath *field.Path, _ int, weighted bool) field.ErrorList {
	if !weighted {
		return field.ErrorList{field.Invalid(fldPath, r.Name(),
			"fitness type must implement framework.Real to derive selection weights")}
	}
	return nil
}

func (r Roulette) Select(in Input, count int, rng *rand.Rand) ([]Pair, error) {
	if err := checkInput(r.Name(), in, count); err != nil {
		return nil, err
	}
	if len(in.Scores) != in.Size {
		return nil, &framework.SelectionError{
			Selector: r.Name(),
			Reason:   fmt.Sprintf("got %d scores for %d individuals", len(in.Scores), in.Size),
		}
	}
	weights, err := Weights(in.Scores, in.Direction)
	if err != nil {
		return nil, &framework.SelectionError{Selector: r.Name(), Reason: err.Error()}
	}

	wheel := distuv.NewCategorical(weights, rng)
	pairs := make([]Pair, count)
	for i := range pairs {
		pairs[i] = Pair{First: int(wheel.Rand()), Second: int(wheel.Rand())}
	}
	return pairs, nil
}

// Weights maps fitness scores to roulette weights:
//
//   - Maximize: w = f when every finite score is non-negative, otherwise
//     w = f - min(f) over the finite scores.
//   - Minimize: w = max(f) - f over the finite scores.
//
// Non-finite scores on the worst side (NaN, and -Inf when maximizing or +Inf
// when minimizing) weigh 0 and take no part in the shift. Infinities on the
// best side share the whole wheel evenly, leaving every other score at 0.
// Weights that are all zero are an error.
func Weights(scores []float64, d framework.Direction) ([]float64, error) {
	if len(scores) == 0 {
		return nil, fmt.Errorf("no scores")
	}
	var best, worst float64
	switch d {
	case framework.Maximize:
		best, worst = math.Inf(1), math.Inf(-1)
	case framework.Minimize:
		best, worst = math.Inf(-1), math.Inf(1)
	default:
		return nil, fmt.Errorf("unsupported direction %v", d)
	}

	weights := make([]float64, len(scores))
	finite := make([]float64, 0, len(scores))
	var top int
	for i, s := range scores {
		switch {
		case s == best:
			weights[i] = 1
			top++
		case s == worst, math.IsNaN(s):
		default:
			finite = append(finite, s)
		}
	}
	if top > 0 {
		return weights, nil
	}
	if len(finite) == 0 {
		return nil, fmt.Errorf("all selection weights are zero")
	}

	var anchor float64
	if d == framework.Maximize {
		anchor = min(floats.Min(finite), 0)
	} else {
		anchor = floats.Max(finite)
	}
	fill := func(scale float64) {
		for i, s := range scores {
			if math.IsInf(s, 0) || math.IsNaN(s) {
				continue
			}
			if d == framework.Maximize {
				weights[i] = s*scale - anchor*scale
			} else {
				weights[i] = anchor*scale - s*scale
			}
		}
	}
	fill(1)
	// Widely spread scores overflow the total; scaling keeps the proportions.
	if math.IsInf(floats.Sum(weights), 0) {
		fill(0.5 / float64(len(scores)))
	}
	if floats.Sum(weights) <= 0 {
		return nil, fmt.Errorf("all selection weights are zero")
	}
	return weights, nil
}
