package stats

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-logr/logr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

// Summary describes the fitness distribution of one ranked generation.
type Summary struct {
	Generation uint64
	Size       int
	Best       float64
	Worst      float64
	Mean       float64
	StdDev     float64
}

func (s Summary) String() string {
	return fmt.Sprintf("generation %s: best %s, worst %s, mean %s ± %s over %s individuals",
		humanize.Comma(int64(s.Generation)),
		humanize.FtoaWithDigits(s.Best, 4),
		humanize.FtoaWithDigits(s.Worst, 4),
		humanize.FtoaWithDigits(s.Mean, 4),
		humanize.FtoaWithDigits(s.StdDev, 4),
		humanize.Comma(int64(s.Size)))
}

// History records a Summary of every ranked generation. It implements
// sim.StatsCollector.
type History[F framework.RealFitness[F]] struct {
	logger    logr.Logger
	summaries []Summary
}

// NewHistory creates an empty history. Every summary is also logged at
// verbosity 3 through logger.
func NewHistory[F framework.RealFitness[F]](logger logr.Logger) *History[F] {
	return &History[F]{logger: logger}
}

// BeforeStep summarizes a ranked generation; fitness is ordered best first.
func (h *History[F]) BeforeStep(generation uint64, fitness []F) {
	if len(fitness) == 0 {
		return
	}
	values := make([]float64, len(fitness))
	for i, f := range fitness {
		values[i] = f.Float64()
	}

	s := Summary{
		Generation: generation,
		Size:       len(values),
		Best:       values[0],
		Worst:      values[len(values)-1],
	}
	if len(values) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	} else {
		s.Mean = floats.Sum(values)
	}
	h.summaries = append(h.summaries, s)
	h.logger.V(3).Info("Generation summary", "generation", s.Generation,
		"best", s.Best, "worst", s.Worst, "mean", s.Mean, "stdDev", s.StdDev)
}

// AfterStep is a no-op: offspring are summarized once the next generation is
// ranked.
func (h *History[F]) AfterStep(uint64, []F) {}

// Summaries returns every recorded summary in generation order.
func (h *History[F]) Summaries() []Summary {
	out := make([]Summary, len(h.summaries))
	copy(out, h.summaries)
	return out
}

// Last returns the most recent summary.
func (h *History[F]) Last() (Summary, bool) {
	if len(h.summaries) == 0 {
		return Summary{}, false
	}
	return h.summaries[len(h.summaries)-1], true
}

func (h *History[F]) String() string {
	var sb strings.Builder
	for _, s := range h.summaries {
		sb.WriteString(s.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
