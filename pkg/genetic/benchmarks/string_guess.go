package benchmarks

import (
	"math"
	"math/rand/v2"

	"github.com/mihai-snyk/genetic/pkg/genetic/framework"
)

const StringGuessName = "StringGuess"

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// StringGuess evolves Guess towards Target. Fitness is the Hamming distance
// between both strings and should be minimized.
type StringGuess struct {
	Target string
	Guess  string

	src source
}

func (s StringGuess) Fitness() framework.Uint {
	if len(s.Target) != len(s.Guess) {
		return math.MaxUint64
	}
	var distance framework.Uint
	for i := range len(s.Target) {
		if s.Target[i] != s.Guess[i] {
			distance++
		}
	}
	return distance
}

// Crossover takes a random prefix of the receiver and the rest from other.
func (s StringGuess) Crossover(other StringGuess) StringGuess {
	if len(s.Guess) == 0 || len(s.Guess) != len(other.Guess) {
		return s
	}
	index := s.src.IntN(len(s.Guess))
	return StringGuess{Target: s.Target, Guess: s.Guess[:index] + other.Guess[index:], src: s.src}
}

// Mutate replaces one random character half of the time.
func (s StringGuess) Mutate() StringGuess {
	if len(s.Guess) == 0 || s.src.IntN(2) == 0 {
		return s
	}
	guess := []byte(s.Guess)
	guess[s.src.IntN(len(guess))] = alphabet[s.src.IntN(len(alphabet))]
	return StringGuess{Target: s.Target, Guess: string(guess), src: s.src}
}

func (s StringGuess) String() string {
	return s.Guess
}

func (s StringGuess) FitnessKey() string {
	return s.Target + "/" + s.Guess
}

// NewStringGuessPopulation creates size random guesses of target. Variation
// keeps drawing from rng.
func NewStringGuessPopulation(target string, size int, rng *rand.Rand) []StringGuess {
	population := make([]StringGuess, size)
	for i := range population {
		guess := make([]byte, len(target))
		for j := range guess {
			guess[j] = alphabet[rng.IntN(len(alphabet))]
		}
		population[i] = StringGuess{Target: target, Guess: string(guess), src: source{rng: rng}}
	}
	return population
}
