package sim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
	"github.com/mihai-snyk/genetic/pkg/genetic/selection"
)

// State is the lifecycle state of a Simulator.
type State int

const (
	NotStarted State = iota
	Running
	Converged
	MaxIterationsReached
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case Converged:
		return "Converged"
	case MaxIterationsReached:
		return "MaxIterationsReached"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further generation will be evolved.
func (s State) Terminal() bool {
	return s == Converged || s == MaxIterationsReached || s == Failed
}

// Simulator evolves a population generation by generation. It exclusively
// owns its population and is not safe for concurrent use; independent
// simulators can run in parallel.
type Simulator[T framework.Individual[T, F], F framework.Fitness[F]] struct {
	id         string
	population *framework.Population[T, F]
	selector   selection.Selector
	direction  framework.Direction
	limit      iterationLimit
	stopper    *earlyStopper[F]
	rng        *rand.Rand
	eval       framework.Evaluator[T, F]
	collectors []StatsCollector[F]
	clock      clock.PassiveClock
	weighted   bool

	state      State
	err        error
	generation uint64
	elapsed    time.Duration

	best        T
	bestFitness F
	hasBest     bool
}

// New validates cfg and builds a Simulator in the NotStarted state.
// Every configuration problem is reported at once as a
// *framework.ConfigurationError.
func New[T framework.Individual[T, F], F framework.Fitness[F]](cfg Config[T, F]) (*Simulator[T, F], error) {
	if err := framework.NewConfigurationError(cfg.Validate()); err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	} else {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}

	var eval framework.Evaluator[T, F] = framework.DirectEvaluator[T, F]{}
	if cfg.CacheFitness {
		eval = framework.NewCachedEvaluator[T, F](0)
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.RealClock{}
	}

	s := &Simulator[T, F]{
		id:         uuid.NewString(),
		population: framework.NewPopulation[T, F](cfg.Population),
		selector:   cfg.Selector,
		direction:  cfg.Direction,
		rng:        rng,
		eval:       eval,
		collectors: cfg.Collectors,
		clock:      clk,
		weighted:   framework.IsReal[F](),
		state:      NotStarted,
	}
	if cfg.MaxIterations != nil {
		s.limit = iterationLimit{max: *cfg.MaxIterations, set: true}
	}
	if cfg.ConvergenceThreshold != nil {
		s.stopper = newEarlyStopper(*cfg.ConvergenceThreshold, cfg.ConvergencePatience)
	}
	return s, nil
}

// Run evolves generations until a terminal state is reached. Once terminal,
// Run returns the same state and error without doing any work.
func (s *Simulator[T, F]) Run(ctx context.Context) (State, error) {
	for {
		state, err := s.Step(ctx)
		if err != nil || state.Terminal() {
			return state, err
		}
	}
}

// Step ranks the current generation and, unless a stop condition fires,
// replaces it with the next one.
func (s *Simulator[T, F]) Step(ctx context.Context) (State, error) {
	if s.state.Terminal() {
		return s.state, s.err
	}
	logger := klog.FromContext(ctx).WithValues("run", s.id)

	start := s.clock.Now()
	defer func() {
		s.elapsed += s.clock.Since(start)
	}()

	if s.state == NotStarted {
		s.state = Running
		logger.V(2).Info("Starting simulation", "population", s.population.Len(),
			"selector", s.selector.Name(), "direction", s.direction)
	}

	ranked := s.population.Rank(s.direction, s.eval)
	if len(s.collectors) > 0 {
		fitness := make([]F, len(ranked))
		for i, r := range ranked {
			fitness[i] = r.Fitness
		}
		for _, c := range s.collectors {
			c.BeforeStep(s.generation, fitness)
		}
	}

	previous, hadBest := s.bestFitness, s.hasBest
	if top := ranked[0]; !s.hasBest || framework.CompareFitness(s.direction, top.Fitness, s.bestFitness) < 0 {
		s.best, s.bestFitness, s.hasBest = top.Individual, top.Fitness, true
	}
	if hadBest && s.stopper != nil {
		s.stopper.update(s.bestFitness.AbsDiff(previous))
	}
	logger.V(4).Info("Ranked generation", "generation", s.generation,
		"generationBest", ranked[0].Fitness, "best", s.bestFitness)

	switch {
	case s.limit.reached(s.generation):
		return s.finish(logger, MaxIterationsReached, nil)
	case s.stopper != nil && s.stopper.converged():
		return s.finish(logger, Converged, nil)
	}

	in := selection.Input{Size: len(ranked), Direction: s.direction}
	if s.weighted {
		in.Scores = make([]float64, len(ranked))
		for i, r := range ranked {
			in.Scores[i] = any(r.Fitness).(framework.Real).Float64()
		}
	}
	pairs, err := s.selector.Select(in, len(ranked), s.rng)
	if err != nil {
		return s.finish(logger, Failed, fmt.Errorf("generation %d: %w", s.generation, err))
	}

	next := make([]T, len(pairs))
	for i, p := range pairs {
		next[i] = ranked[p.First].Individual.Crossover(ranked[p.Second].Individual).Mutate()
	}
	if err := s.population.Replace(next); err != nil {
		return s.finish(logger, Failed, fmt.Errorf("generation %d: %w", s.generation, err))
	}
	s.generation++

	if len(s.collectors) > 0 {
		fitness := s.population.Fitness(s.eval)
		for _, c := range s.collectors {
			c.AfterStep(s.generation, fitness)
		}
	}
	return s.state, nil
}

func (s *Simulator[T, F]) finish(logger klog.Logger, state State, err error) (State, error) {
	s.state, s.err = state, err
	if err != nil {
		logger.Error(err, "Simulation failed", "generation", s.generation)
	} else {
		logger.V(2).Info("Simulation finished", "state", state, "generation", s.generation, "best", s.bestFitness)
	}
	return s.state, s.err
}

// ID returns the identifier attached to every log line of this simulator.
func (s *Simulator[T, F]) ID() string {
	return s.id
}

// Best returns the best individual ranked so far, even if later generations
// regressed.
func (s *Simulator[T, F]) Best() (T, error) {
	if !s.hasBest {
		var zero T
		return zero, framework.ErrUninitialized
	}
	return s.best, nil
}

// BestFitness returns the fitness of Best.
func (s *Simulator[T, F]) BestFitness() (F, error) {
	if !s.hasBest {
		var zero F
		return zero, framework.ErrUninitialized
	}
	return s.bestFitness, nil
}

// Generation returns the number of generations replaced so far.
func (s *Simulator[T, F]) Generation() uint64 {
	return s.generation
}

func (s *Simulator[T, F]) State() State {
	return s.state
}

// Err returns the error that moved the simulator to Failed, if any.
func (s *Simulator[T, F]) Err() error {
	return s.err
}

// Elapsed returns the time spent evolving so far.
func (s *Simulator[T, F]) Elapsed() time.Duration {
	return s.elapsed
}

// Population returns a copy of the current generation.
func (s *Simulator[T, F]) Population() []T {
	return s.population.Members()
}

// CacheStats returns the fitness cache hits and misses. Both are zero unless
// CacheFitness was set.
func (s *Simulator[T, F]) CacheStats() (hits, misses uint64) {
	if cached, ok := s.eval.(*framework.CachedEvaluator[T, F]); ok {
		return cached.Stats()
	}
	return 0, 0
}
