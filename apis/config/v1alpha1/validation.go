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
	"math"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// Problems lists the benchmark problems an Evolution can run
var Problems = []string{"Countdown", "Parabola", "OneMax", "Sphere", "TruckLoading", "StringGuess"}

var (
	directions    = []string{"Maximize", "Minimize"}
	selectorTypes = []SelectorType{SelectorTournament, SelectorStochastic, SelectorRoulette, SelectorTruncation}
)

// ValidateEvolution validates the spec of an Evolution. Selector parameters
// are checked against the population when the simulator is built.
func ValidateEvolution(obj *Evolution) field.ErrorList {
	var errs field.ErrorList
	if obj.APIVersion != SchemeGroupVersion.String() {
		errs = append(errs, field.NotSupported(field.NewPath("apiVersion"), obj.APIVersion, []string{SchemeGroupVersion.String()}))
	}
	if obj.Kind != Kind {
		errs = append(errs, field.NotSupported(field.NewPath("kind"), obj.Kind, []string{Kind}))
	}

	spec := obj.Spec
	specPath := field.NewPath("spec")
	if !contains(Problems, spec.Problem) {
		errs = append(errs, field.NotSupported(specPath.Child("problem"), spec.Problem, Problems))
	}
	if spec.PopulationSize < 1 {
		errs = append(errs, field.Invalid(specPath.Child("populationSize"), spec.PopulationSize, "must be at least 1"))
	}
	if spec.Length < 0 {
		errs = append(errs, field.Invalid(specPath.Child("length"), spec.Length, "must be non-negative"))
	}
	if !contains(directions, spec.Direction) {
		errs = append(errs, field.NotSupported(specPath.Child("direction"), spec.Direction, directions))
	}
	if !contains(selectorTypes, spec.Selector.Type) {
		errs = append(errs, field.NotSupported(specPath.Child("selector", "type"), spec.Selector.Type, selectorTypes))
	}

	if spec.MaxIterations == nil && spec.ConvergenceThreshold == nil {
		errs = append(errs, field.Required(specPath.Child("maxIterations"),
			"maxIterations or convergenceThreshold must be set"))
	}
	if t := spec.ConvergenceThreshold; t != nil && (math.IsNaN(*t) || *t <= 0) {
		errs = append(errs, field.Invalid(specPath.Child("convergenceThreshold"), *t, "must be greater than zero"))
	}
	return errs
}

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
