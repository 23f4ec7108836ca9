package main

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"
	"k8s.io/utils/ptr"

	"github.com/mihai-snyk/genetic/apis/config/v1alpha1"
	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic/pkg/genetic/selection"
	"github.com/mihai-snyk/genetic/pkg/genetic/sim"
	"github.com/mihai-snyk/genetic/pkg/genetic/stats"
)

// evolve runs population to completion and records the outcome in
// obj.Status. The returned summaries are nil when the simulator could not be
// built.
func evolve[T framework.Individual[T, F], F framework.RealFitness[F]](
	ctx context.Context,
	obj *v1alpha1.Evolution,
	population []T,
	threshold func(float64) F,
	clk clock.Clock,
) ([]stats.Summary, error) {
	spec := obj.Spec
	selector, err := selectorFor(spec.Selector)
	if err != nil {
		return nil, err
	}
	direction, err := framework.ParseDirection(spec.Direction)
	if err != nil {
		return nil, err
	}

	history := stats.NewHistory[F](klog.FromContext(ctx))
	cfg := sim.Config[T, F]{
		Population:    population,
		Selector:      selector,
		Direction:     direction,
		MaxIterations: spec.MaxIterations,
		Seed:          spec.Seed,
		Collectors:    []sim.StatsCollector[F]{history},
		CacheFitness:  spec.CacheFitness,
		Clock:         clk,
	}
	if spec.ConvergenceThreshold != nil {
		cfg.ConvergenceThreshold = ptr.To(threshold(*spec.ConvergenceThreshold))
		cfg.ConvergencePatience = spec.ConvergencePatience
	}
	s, err := sim.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("building simulator for %s: %w", spec.Problem, err)
	}

	start := metav1.NewTime(clk.Now())
	state, runErr := s.Run(ctx)
	completion := metav1.NewTime(clk.Now())

	status := &obj.Status
	status.Phase = phaseFor(state)
	status.RunID = s.ID()
	status.Generations = s.Generation()
	status.Elapsed = metav1.Duration{Duration: s.Elapsed()}
	status.StartTime = &start
	status.CompletionTime = &completion
	status.CacheHits, status.CacheMisses = s.CacheStats()
	if best, err := s.Best(); err == nil {
		status.Best = fmt.Sprintf("%+v", best)
	}
	if fitness, err := s.BestFitness(); err == nil {
		status.BestFitness = humanize.FtoaWithDigits(fitness.Float64(), 6)
	}

	condition := metav1.Condition{
		Type:               v1alpha1.ConditionCompleted,
		Status:             metav1.ConditionTrue,
		Reason:             string(status.Phase),
		Message:            fmt.Sprintf("Evolved %d generations", status.Generations),
		ObservedGeneration: obj.Generation,
		LastTransitionTime: completion,
	}
	if runErr != nil {
		condition.Status = metav1.ConditionFalse
		condition.Message = runErr.Error()
	}
	meta.SetStatusCondition(&status.Conditions, condition)

	return history.Summaries(), runErr
}

func selectorFor(spec v1alpha1.SelectorSpec) (selection.Selector, error) {
	switch spec.Type {
	case v1alpha1.SelectorTournament:
		return selection.Tournament{Size: spec.TournamentSize, Rounds: spec.Rounds}, nil
	case v1alpha1.SelectorStochastic:
		return selection.Stochastic{SampleSize: spec.SampleSize}, nil
	case v1alpha1.SelectorRoulette:
		return selection.Roulette{}, nil
	case v1alpha1.SelectorTruncation:
		return selection.Truncation{Count: spec.Count}, nil
	}
	return nil, fmt.Errorf("unsupported selector type %q", spec.Type)
}

func phaseFor(state sim.State) v1alpha1.EvolutionPhase {
	switch state {
	case sim.Converged:
		return v1alpha1.EvolutionPhaseConverged
	case sim.MaxIterationsReached:
		return v1alpha1.EvolutionPhaseMaxIterationsReached
	default:
		return v1alpha1.EvolutionPhaseFailed
	}
}

func floatThreshold(t float64) framework.Float {
	return framework.Float(t)
}

// Integer fitness improves in whole steps, so a fractional threshold is
// rounded up.
func intThreshold(t float64) framework.Int {
	return framework.Int(math.Ceil(t))
}

func uintThreshold(t float64) framework.Uint {
	return framework.Uint(math.Ceil(t))
}

func writeReport(w io.Writer, obj *v1alpha1.Evolution) {
	status := obj.Status
	fmt.Fprintf(w, "%s: %s after %s generations in %s\n",
		obj.Spec.Problem, status.Phase, humanize.Comma(int64(status.Generations)), status.Elapsed.Duration)
	if status.BestFitness != "" {
		fmt.Fprintf(w, "best fitness %s: %s\n", status.BestFitness, status.Best)
	}
	if status.CacheHits+status.CacheMisses > 0 {
		fmt.Fprintf(w, "fitness cache: %s hits, %s misses\n",
			humanize.Comma(int64(status.CacheHits)), humanize.Comma(int64(status.CacheMisses)))
	}
}
