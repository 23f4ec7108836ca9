package main

import (
	"context"
	"fmt"
	"math/rand/v2"

	"k8s.io/utils/clock"

	"github.com/mihai-snyk/genetic/apis/config/v1alpha1"
	"github.com/mihai-snyk/genetic/pkg/genetic/benchmarks"
	"github.com/mihai-snyk/genetic/pkg/genetic/stats"
)

// countdownStart is the value of the first Countdown individual.
const countdownStart = 10

// runProblem builds the initial population of the benchmark named by obj and
// evolves it.
func runProblem(ctx context.Context, obj *v1alpha1.Evolution, clk clock.Clock) ([]stats.Summary, error) {
	spec := obj.Spec
	var rng *rand.Rand
	if spec.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(spec.Seed, ^spec.Seed))
	}

	size := spec.PopulationSize
	switch spec.Problem {
	case benchmarks.CountdownName:
		return evolve(ctx, obj, benchmarks.NewCountdownPopulation(countdownStart, size), intThreshold, clk)
	case benchmarks.ParabolaName:
		return evolve(ctx, obj, benchmarks.NewParabolaPopulation(size, rng), floatThreshold, clk)
	case benchmarks.OneMaxName:
		return evolve(ctx, obj, benchmarks.NewOneMaxPopulation(size, spec.Length, rng), intThreshold, clk)
	case benchmarks.SphereName:
		return evolve(ctx, obj, benchmarks.NewSpherePopulation(size, spec.Length, rng), floatThreshold, clk)
	case benchmarks.TruckLoadingName:
		return evolve(ctx, obj, benchmarks.NewTruckLoadingPopulation(size, rng), floatThreshold, clk)
	case benchmarks.StringGuessName:
		return evolve(ctx, obj, benchmarks.NewStringGuessPopulation(spec.Target, size, rng), uintThreshold, clk)
	}
	return nil, fmt.Errorf("unknown problem %q", spec.Problem)
}
