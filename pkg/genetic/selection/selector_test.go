package selection

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func scores(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(n - i)
	}
	return s
}

func allSelectors() []Selector {
	return []Selector{
		Tournament{Size: 3},
		Tournament{Size: 2, Rounds: 4},
		Stochastic{SampleSize: 5},
		Roulette{},
		Truncation{Count: 4},
	}
}

func TestSelectorsReturnCountPairsInRange(t *testing.T) {
	in := Input{Size: 10, Direction: framework.Maximize, Scores: scores(10)}
	for _, s := range allSelectors() {
		for _, count := range []int{0, 1, 7, 10, 25} {
			pairs, err := s.Select(in, count, newRand(1))
			require.NoError(t, err, "%s count=%d", s.Name(), count)
			require.Len(t, pairs, count, "%s count=%d", s.Name(), count)
			for _, p := range pairs {
				assert.GreaterOrEqual(t, p.First, 0)
				assert.Less(t, p.First, in.Size)
				assert.GreaterOrEqual(t, p.Second, 0)
				assert.Less(t, p.Second, in.Size)
			}
		}
	}
}

func TestSelectorsAreDeterministicForASeed(t *testing.T) {
	in := Input{Size: 20, Direction: framework.Minimize, Scores: scores(20)}
	for _, s := range allSelectors() {
		a, err := s.Select(in, 20, newRand(42))
		require.NoError(t, err)
		b, err := s.Select(in, 20, newRand(42))
		require.NoError(t, err)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s: same seed gave different pairs (-first +second):\n%s", s.Name(), diff)
		}
	}
}

func TestSelectorsRejectEmptyInput(t *testing.T) {
	for _, s := range allSelectors() {
		_, err := s.Select(Input{Direction: framework.Maximize}, 1, newRand(1))
		var selErr *framework.SelectionError
		require.True(t, errors.As(err, &selErr), "%s: got %v", s.Name(), err)
		assert.Equal(t, s.Name(), selErr.Selector)
	}
}

func TestValidate(t *testing.T) {
	path := field.NewPath("selector")
	tests := []struct {
		name     string
		selector Selector
		size     int
		weighted bool
		fields   []string
	}{
		{name: "tournament ok", selector: Tournament{Size: 3}, size: 10},
		{name: "tournament size one", selector: Tournament{Size: 1}, size: 1},
		{name: "tournament zero size", selector: Tournament{}, size: 10, fields: []string{"selector.size"}},
		{name: "tournament too large", selector: Tournament{Size: 11}, size: 10, fields: []string{"selector.size"}},
		{name: "tournament negative rounds", selector: Tournament{Size: 2, Rounds: -1}, size: 10, fields: []string{"selector.rounds"}},
		{name: "stochastic ok", selector: Stochastic{SampleSize: 10}, size: 10},
		{name: "stochastic zero", selector: Stochastic{}, size: 10, fields: []string{"selector.sampleSize"}},
		{name: "stochastic too large", selector: Stochastic{SampleSize: 11}, size: 10, fields: []string{"selector.sampleSize"}},
		{name: "roulette weighted", selector: Roulette{}, size: 10, weighted: true},
		{name: "roulette unweighted", selector: Roulette{}, size: 10, fields: []string{"selector"}},
		{name: "truncation ok", selector: Truncation{Count: 10}, size: 10},
		{name: "truncation odd", selector: Truncation{Count: 3}, size: 10, fields: []string{"selector.count"}},
		{name: "truncation zero", selector: Truncation{}, size: 10, fields: []string{"selector.count"}},
		{name: "truncation too large", selector: Truncation{Count: 12}, size: 10, fields: []string{"selector.count"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.selector.Validate(path, tt.size, tt.weighted)
			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

// chiSquareP returns the probability of seeing counts at least this far from
// the expected distribution by chance.
func chiSquareP(t *testing.T, counts, expected []float64) float64 {
	t.Helper()
	x := stat.ChiSquare(counts, expected)
	return distuv.ChiSquared{K: float64(len(counts) - 1)}.Survival(x)
}
