package framework

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Evaluator computes the fitness of an individual.
type Evaluator[T Individual[T, F], F Fitness[F]] interface {
	Evaluate(T) F
}

// DirectEvaluator calls Fitness on every evaluation.
type DirectEvaluator[T Individual[T, F], F Fitness[F]] struct{}

func (DirectEvaluator[T, F]) Evaluate(ind T) F {
	return ind.Fitness()
}

// CachedEvaluator memoizes the fitness of individuals implementing Keyer
// across generations. Other individuals are evaluated directly.
type CachedEvaluator[T Individual[T, F], F Fitness[F]] struct {
	cache  *cache.Cache
	hits   uint64
	misses uint64
}

// NewCachedEvaluator creates an evaluator whose entries expire after ttl.
// A non-positive ttl keeps entries for the lifetime of the evaluator.
func NewCachedEvaluator[T Individual[T, F], F Fitness[F]](ttl time.Duration) *CachedEvaluator[T, F] {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	// Expired entries are skipped on lookup, so no janitor goroutine is needed.
	return &CachedEvaluator[T, F]{cache: cache.New(ttl, 0)}
}

func (e *CachedEvaluator[T, F]) Evaluate(ind T) F {
	keyer, ok := any(ind).(Keyer)
	if !ok {
		e.misses++
		return ind.Fitness()
	}
	key := keyer.FitnessKey()
	if v, found := e.cache.Get(key); found {
		if f, ok := v.(F); ok {
			e.hits++
			return f
		}
	}
	e.misses++
	f := ind.Fitness()
	e.cache.SetDefault(key, f)
	return f
}

// Stats returns the number of cache hits and misses so far.
func (e *CachedEvaluator[T, F]) Stats() (hits, misses uint64) {
	return e.hits, e.misses
}

// Len returns the number of cached fitness values, including expired ones
// that have not been overwritten yet.
func (e *CachedEvaluator[T, F]) Len() int {
	return e.cache.ItemCount()
}
