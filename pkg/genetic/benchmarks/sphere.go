package benchmarks

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

const SphereName = "Sphere"

// Bounds limits a real-valued variable to [L, H].
type Bounds struct {
	L float64
	H float64
}

// Sphere represents a solution with real-valued variables whose fitness is
// the sum of their squares, minimized at the origin.
type Sphere struct {
	Variables []float64
	Bounds    []Bounds
	// MutationRate is the probability of mutating each variable.
	MutationRate float64

	src source
}

func NewSphere(vars []float64, b []Bounds, mutationRate float64) *Sphere {
	return &Sphere{
		Variables:    vars,
		Bounds:       b,
		MutationRate: mutationRate,
	}
}

func (sol *Sphere) Clone() *Sphere {
	vars := make([]float64, len(sol.Variables))
	copy(vars, sol.Variables)
	return &Sphere{
		Variables:    vars,
		Bounds:       sol.Bounds,
		MutationRate: sol.MutationRate,
		src:          sol.src,
	}
}

func (sol *Sphere) Fitness() framework.Float {
	var sum float64
	for _, v := range sol.Variables {
		sum += v * v
	}
	return framework.Float(sum)
}

// Crossover performs SBX (Simulated Binary Crossover) and keeps the child
// closest to the receiver.
func (sol *Sphere) Crossover(other *Sphere) *Sphere {
	child := sol.Clone()
	for i := range child.Variables {
		if i >= len(other.Variables) {
			break
		}
		var beta float64
		if sol.src.Float64() <= 0.5 {
			beta = math.Pow(2*sol.src.Float64(), 1.0/3.0)
		} else {
			beta = math.Pow(1.0/(2*(1.0-sol.src.Float64())), 1.0/3.0)
		}
		child.Variables[i] = 0.5 * ((1+beta)*sol.Variables[i] + (1-beta)*other.Variables[i])
		child.Variables[i] = sol.clamp(i, child.Variables[i])
	}
	return child
}

// Mutate performs polynomial mutation.
func (sol *Sphere) Mutate() *Sphere {
	child := sol.Clone()
	for i := range child.Variables {
		if sol.src.Float64() >= sol.MutationRate {
			continue
		}
		var delta float64
		if sol.src.Float64() <= 0.5 {
			delta = math.Pow(2*sol.src.Float64(), 1.0/3.0) - 1
		} else {
			delta = 1 - math.Pow(2*(1-sol.src.Float64()), 1.0/3.0)
		}
		if i < len(sol.Bounds) {
			delta *= sol.Bounds[i].H - sol.Bounds[i].L
		}
		child.Variables[i] = sol.clamp(i, child.Variables[i]+delta)
	}
	return child
}

func (sol *Sphere) String() string {
	return fmt.Sprintf("%v", sol.Variables)
}

func (sol *Sphere) clamp(i int, v float64) float64 {
	if i >= len(sol.Bounds) {
		return v
	}
	return math.Max(sol.Bounds[i].L, math.Min(sol.Bounds[i].H, v))
}

// NewSpherePopulation creates size solutions with numVars variables drawn
// uniformly from [-5.12, 5.12]. Variation keeps drawing from rng.
func NewSpherePopulation(size, numVars int, rng *rand.Rand) []*Sphere {
	b := make([]Bounds, numVars)
	for i := range b {
		b[i] = Bounds{L: -5.12, H: 5.12}
	}
	rate := 0.0
	if numVars > 0 {
		rate = 1 / float64(numVars)
	}

	population := make([]*Sphere, size)
	for i := range population {
		vars := make([]float64, numVars)
		for j := range vars {
			vars[j] = b[j].L + rng.Float64()*(b[j].H-b[j].L)
		}
		population[i] = NewSphere(vars, b, rate)
		population[i].src = source{rng: rng}
	}
	return population
}
