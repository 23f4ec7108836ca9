package framework

import (
	"cmp"
	"math"
)

// Int is a signed integer fitness.
type Int int64

func (f Int) Compare(o Int) int { return cmp.Compare(f, o) }

// AbsDiff saturates at math.MaxInt64 when the distance does not fit.
func (f Int) AbsDiff(o Int) Int {
	if f < o {
		f, o = o, f
	}
	if d := f - o; d >= 0 {
		return d
	}
	return math.MaxInt64
}

func (Int) Zero() Int { return 0 }

func (f Int) Float64() float64 { return float64(f) }

// Uint is an unsigned integer fitness. AbsDiff never wraps around.
type Uint uint64

func (f Uint) Compare(o Uint) int { return cmp.Compare(f, o) }

func (f Uint) AbsDiff(o Uint) Uint {
	if f > o {
		return f - o
	}
	return o - f
}

func (Uint) Zero() Uint { return 0 }

func (f Uint) Float64() float64 { return float64(f) }

// Float is a floating point fitness. NaN sorts below every number and equal
// to itself, which keeps the order total.
type Float float64

func (f Float) Compare(o Float) int { return cmp.Compare(f, o) }

func (f Float) AbsDiff(o Float) Float {
	return Float(math.Abs(float64(f - o)))
}

func (Float) Zero() Float { return 0 }

func (f Float) Float64() float64 { return float64(f) }
