package framework

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntFitness(t *testing.T) {
	assert.Negative(t, Int(-4).Compare(3))
	assert.Zero(t, Int(3).Compare(3))
	assert.Equal(t, Int(7), Int(-4).AbsDiff(3))
	assert.Equal(t, Int(7), Int(3).AbsDiff(-4))
	assert.Equal(t, Int(0), Int(9).Zero())
	assert.Equal(t, -4.0, Int(-4).Float64())
}

func TestIntAbsDiffSaturates(t *testing.T) {
	assert.Equal(t, Int(math.MaxInt64), Int(math.MinInt64).AbsDiff(1))
	assert.Equal(t, Int(math.MaxInt64), Int(math.MaxInt64).AbsDiff(math.MinInt64))
	assert.Equal(t, Int(math.MaxInt64), Int(0).AbsDiff(math.MaxInt64))
	assert.Equal(t, Int(math.MaxInt64), Int(-1).AbsDiff(math.MaxInt64))
	assert.Equal(t, Int(0), Int(math.MinInt64).AbsDiff(math.MinInt64))
}

func TestUintAbsDiffNeverWraps(t *testing.T) {
	assert.Equal(t, Uint(5), Uint(2).AbsDiff(7))
	assert.Equal(t, Uint(5), Uint(7).AbsDiff(2))
	assert.Equal(t, Uint(math.MaxUint64), Uint(0).AbsDiff(math.MaxUint64))
}

func TestFloatOrdersNaNFirst(t *testing.T) {
	nan := Float(math.NaN())
	assert.Negative(t, nan.Compare(Float(math.Inf(-1))))
	assert.Zero(t, nan.Compare(nan))
	assert.Positive(t, Float(1.5).Compare(-2))
	assert.Equal(t, Float(3.5), Float(-1).AbsDiff(2.5))
}

func TestCompareFitness(t *testing.T) {
	assert.Negative(t, CompareFitness(Maximize, Int(5), Int(1)))
	assert.Positive(t, CompareFitness(Minimize, Int(5), Int(1)))
	assert.Zero(t, CompareFitness(Minimize, Int(2), Int(2)))
}

func TestParseDirection(t *testing.T) {
	for _, name := range Directions {
		d, err := ParseDirection(name)
		assert.NoError(t, err)
		assert.True(t, d.Valid())
		assert.Equal(t, name, d.String())
	}
	_, err := ParseDirection("Sideways")
	assert.Error(t, err)
	assert.False(t, Direction(0).Valid())
	assert.Equal(t, "Direction(0)", Direction(0).String())
}

func TestIsReal(t *testing.T) {
	assert.True(t, IsReal[Int]())
	assert.True(t, IsReal[Float]())
	assert.False(t, IsReal[label]())
}
