package benchmarks

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

const TruckLoadingName = "TruckLoading"

const (
	// NumTrucks is the number of trucks available.
	NumTrucks = 5
	// TruckCapacity is the load every truck can carry.
	TruckCapacity = 10
)

// Packages lists the size of every package to load.
var Packages = []int{3, 8, 2, 7, 6, 1, 3}

// TruckLoading assigns every package to a truck. Fitness is the free space
// left on the used trucks, with a bonus for every empty truck, and should be
// minimized. Overfilling any truck gives an infinite fitness.
type TruckLoading struct {
	// Trucks[i] is the truck package i is loaded on.
	Trucks []int

	src source
}

// Loads returns the total load of every truck.
func (t TruckLoading) Loads() []int {
	loads := make([]int, NumTrucks)
	for i, truck := range t.Trucks {
		loads[truck] += Packages[i]
	}
	return loads
}

func (t TruckLoading) Fitness() framework.Float {
	var fitness float64
	for _, load := range t.Loads() {
		free := TruckCapacity - load
		switch {
		case free < 0:
			return framework.Float(math.Inf(1))
		case free == TruckCapacity:
			fitness -= 3
		default:
			fitness += float64(free)
		}
	}
	return framework.Float(fitness)
}

// Crossover uses two-point crossover: packages between both points come from
// the other parent.
func (t TruckLoading) Crossover(other TruckLoading) TruckLoading {
	child := slices.Clone(t.Trucks)
	from, to := t.src.IntN(len(Packages)), t.src.IntN(len(Packages))
	for i := from; i < to; i++ {
		child[i] = other.Trucks[i]
	}
	return TruckLoading{Trucks: child, src: t.src}
}

// Mutate moves one random package to a random truck.
func (t TruckLoading) Mutate() TruckLoading {
	child := slices.Clone(t.Trucks)
	child[t.src.IntN(len(child))] = t.src.IntN(NumTrucks)
	return TruckLoading{Trucks: child, src: t.src}
}

func (t TruckLoading) String() string {
	return fmt.Sprintf("{Trucks:%v}", t.Trucks)
}

// NewTruckLoadingPopulation creates size random loading schemes. Variation
// keeps drawing from rng.
func NewTruckLoadingPopulation(size int, rng *rand.Rand) []TruckLoading {
	population := make([]TruckLoading, size)
	for i := range population {
		trucks := make([]int, len(Packages))
		for j := range trucks {
			trucks[j] = rng.IntN(NumTrucks)
		}
		population[i] = TruckLoading{Trucks: trucks, src: source{rng: rng}}
	}
	return population
}
