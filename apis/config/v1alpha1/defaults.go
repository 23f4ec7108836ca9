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

import "k8s.io/utils/ptr"

var (
	// DefaultPopulationSize is the population size used when none is set
	DefaultPopulationSize = 100
	// DefaultMaxIterations is used when neither a generation cap nor a
	// convergence threshold is set
	DefaultMaxIterations uint64 = 100
	// DefaultTournamentSize is the tournament size used when none is set
	DefaultTournamentSize = 3
	// DefaultSampleSize is the stochastic pool size used when none is set
	DefaultSampleSize = 10
	// DefaultTruncationCount is the truncation count used when none is set
	DefaultTruncationCount = 10
	// DefaultTarget is the string StringGuess evolves towards by default
	DefaultTarget = "HelloWorld"

	defaultLength = map[string]int{
		"OneMax": 32,
		"Sphere": 10,
	}
)

// SetDefaults_Evolution sets additional defaults
func SetDefaults_Evolution(obj *Evolution) {
	if obj.APIVersion == "" {
		obj.APIVersion = SchemeGroupVersion.String()
	}
	if obj.Kind == "" {
		obj.Kind = Kind
	}

	spec := &obj.Spec
	if spec.PopulationSize == 0 {
		spec.PopulationSize = DefaultPopulationSize
	}
	if spec.Length == 0 {
		spec.Length = defaultLength[spec.Problem]
	}
	if spec.Problem == "StringGuess" && spec.Target == "" {
		spec.Target = DefaultTarget
	}
	if spec.MaxIterations == nil && spec.ConvergenceThreshold == nil {
		spec.MaxIterations = ptr.To(DefaultMaxIterations)
	}
	if spec.ConvergenceThreshold != nil && spec.ConvergencePatience == 0 {
		spec.ConvergencePatience = 1
	}

	sel := &spec.Selector
	if sel.Type == "" {
		sel.Type = SelectorTournament
	}
	switch sel.Type {
	case SelectorTournament:
		if sel.TournamentSize == 0 {
			sel.TournamentSize = min(DefaultTournamentSize, spec.PopulationSize)
		}
	case SelectorStochastic:
		if sel.SampleSize == 0 {
			sel.SampleSize = min(DefaultSampleSize, spec.PopulationSize)
		}
	case SelectorTruncation:
		if sel.Count == 0 {
			sel.Count = min(DefaultTruncationCount, spec.PopulationSize&^1)
		}
	}
}
