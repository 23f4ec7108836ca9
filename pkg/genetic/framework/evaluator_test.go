package framework

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type plain struct {
	fitness Int
}

func (p plain) Fitness() Int {
	return p.fitness
}

func (p plain) Crossover(plain) plain {
	return p
}

func (p plain) Mutate() plain {
	return p
}

func TestCachedEvaluator(t *testing.T) {
	calls := 0
	e := NewCachedEvaluator[tagged, Int](0)

	for range 3 {
		assert.Equal(t, Int(4), e.Evaluate(tagged{name: "a", fitness: 4, calls: &calls}))
	}
	assert.Equal(t, Int(2), e.Evaluate(tagged{name: "b", fitness: 2, calls: &calls}))

	hits, misses := e.Stats()
	assert.Equal(t, uint64(2), hits)
	assert.Equal(t, uint64(2), misses)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, e.Len())
}

func TestCachedEvaluatorSkipsIndividualsWithoutKey(t *testing.T) {
	e := NewCachedEvaluator[plain, Int](time.Minute)
	assert.Equal(t, Int(3), e.Evaluate(plain{fitness: 3}))
	assert.Equal(t, Int(3), e.Evaluate(plain{fitness: 3}))

	hits, misses := e.Stats()
	assert.Zero(t, hits)
	assert.Equal(t, uint64(2), misses)
	assert.Zero(t, e.Len())
}
