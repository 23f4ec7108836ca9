/*
Copyright 2024 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// GroupName is the group name used in this package
const GroupName = "genetic.mihai-snyk.io"

// SchemeGroupVersion is group version used to register these objects
var SchemeGroupVersion = schema.GroupVersion{Group: GroupName, Version: "v1alpha1"}

// Kind is the kind of the Evolution object
const Kind = "Evolution"

// Evolution describes one genetic optimization run: the problem to evolve,
// how to select parents and when to stop. Status is filled in once the run
// reaches a terminal state.
// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Problem",JSONPath=".spec.problem",type=string,description="Benchmark problem being evolved"
// +kubebuilder:printcolumn:name="Phase",JSONPath=".status.phase",type=string,description="Terminal state of the run"
// +kubebuilder:printcolumn:name="Generations",JSONPath=".status.generations",type=integer,description="Number of generations evolved"
type Evolution struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   EvolutionSpec   `json:"spec,omitempty"`
	Status EvolutionStatus `json:"status,omitempty"`
}

// EvolutionSpec defines the configuration of a run
type EvolutionSpec struct {
	// Problem is the name of the benchmark to evolve
	// +kubebuilder:validation:Enum=Countdown;Parabola;OneMax;Sphere;TruckLoading;StringGuess
	Problem string `json:"problem"`

	// PopulationSize is the number of individuals in every generation
	PopulationSize int `json:"populationSize,omitempty"`

	// Length is the number of genes for problems with a variable encoding:
	// bits for OneMax and variables for Sphere
	Length int `json:"length,omitempty"`

	// Target is the string StringGuess evolves towards
	Target string `json:"target,omitempty"`

	// Selector chooses the parents of every offspring
	Selector SelectorSpec `json:"selector"`

	// Direction tells whether higher or lower fitness is better
	// +kubebuilder:validation:Enum=Maximize;Minimize
	Direction string `json:"direction"`

	// MaxIterations caps the number of generations
	MaxIterations *uint64 `json:"maxIterations,omitempty"`

	// ConvergenceThreshold stops the run once the best fitness improves by less
	// than this value for ConvergencePatience consecutive generations
	ConvergenceThreshold *float64 `json:"convergenceThreshold,omitempty"`

	// ConvergencePatience is the number of stalled generations tolerated
	ConvergencePatience uint64 `json:"convergencePatience,omitempty"`

	// Seed for random number generation (0 for random seed). It drives the
	// initial population, parent selection and every crossover and mutation,
	// so a non-zero seed replays the same run
	Seed uint64 `json:"seed,omitempty"`

	// CacheFitness memoizes fitness values across generations
	CacheFitness bool `json:"cacheFitness,omitempty"`
}

// SelectorType names a parent selection strategy
type SelectorType string

const (
	SelectorTournament SelectorType = "Tournament"
	SelectorStochastic SelectorType = "Stochastic"
	SelectorRoulette   SelectorType = "Roulette"
	SelectorTruncation SelectorType = "Truncation"
)

// SelectorSpec configures parent selection. Only the fields of the chosen
// Type are used.
type SelectorSpec struct {
	// +kubebuilder:validation:Enum=Tournament;Stochastic;Roulette;Truncation
	Type SelectorType `json:"type"`

	// TournamentSize is the number of contestants per tournament
	TournamentSize int `json:"tournamentSize,omitempty"`

	// Rounds is the number of distinct tournament pairs drawn per generation
	Rounds int `json:"rounds,omitempty"`

	// SampleSize is the size of the stochastic candidate pool
	SampleSize int `json:"sampleSize,omitempty"`

	// Count is the number of best individuals kept by truncation
	Count int `json:"count,omitempty"`
}

// EvolutionStatus defines the outcome of a run
type EvolutionStatus struct {
	// Phase is the terminal state the run reached
	// +kubebuilder:validation:Enum=Converged;MaxIterationsReached;Failed
	Phase EvolutionPhase `json:"phase,omitempty"`

	// RunID identifies the run in the logs
	RunID string `json:"runID,omitempty"`

	// Generations is the number of generations evolved
	Generations uint64 `json:"generations,omitempty"`

	// BestFitness is the fitness of the best individual ever ranked
	BestFitness string `json:"bestFitness,omitempty"`

	// Best is a printable form of the best individual ever ranked
	Best string `json:"best,omitempty"`

	// Elapsed is the time spent evolving
	Elapsed metav1.Duration `json:"elapsed,omitempty"`

	// StartTime is when the run started
	StartTime *metav1.Time `json:"startTime,omitempty"`

	// CompletionTime is when the run reached its terminal state
	CompletionTime *metav1.Time `json:"completionTime,omitempty"`

	// CacheHits and CacheMisses count fitness cache lookups
	CacheHits   uint64 `json:"cacheHits,omitempty"`
	CacheMisses uint64 `json:"cacheMisses,omitempty"`

	// Conditions represent the latest available observations of the run
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// EvolutionPhase represents the terminal state of a run
type EvolutionPhase string

const (
	// EvolutionPhaseConverged indicates the best fitness stopped improving
	EvolutionPhaseConverged EvolutionPhase = "Converged"

	// EvolutionPhaseMaxIterationsReached indicates the generation cap was hit
	EvolutionPhaseMaxIterationsReached EvolutionPhase = "MaxIterationsReached"

	// EvolutionPhaseFailed indicates parent selection failed
	EvolutionPhaseFailed EvolutionPhase = "Failed"
)

// ConditionCompleted is true once the run reached a terminal state without
// failing
const ConditionCompleted = "Completed"
