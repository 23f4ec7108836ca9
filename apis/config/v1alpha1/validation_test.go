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
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/utils/ptr"
)

func validEvolution() *Evolution {
	obj := &Evolution{Spec: EvolutionSpec{Problem: "Parabola", Direction: "Maximize"}}
	SetDefaults_Evolution(obj)
	return obj
}

func TestValidateEvolution(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Evolution)
		fields []string
	}{
		{name: "valid", modify: func(*Evolution) {}},
		{
			name:   "wrong kind",
			modify: func(e *Evolution) { e.Kind = "Pod" },
			fields: []string{"kind"},
		},
		{
			name:   "empty population",
			modify: func(e *Evolution) { e.Spec.PopulationSize = 0 },
			fields: []string{"spec.populationSize"},
		},
		{
			name:   "unknown selector",
			modify: func(e *Evolution) { e.Spec.Selector.Type = "Lottery" },
			fields: []string{"spec.selector.type"},
		},
		{
			name:   "no termination",
			modify: func(e *Evolution) { e.Spec.MaxIterations = nil },
			fields: []string{"spec.maxIterations"},
		},
		{
			name:   "zero threshold",
			modify: func(e *Evolution) { e.Spec.ConvergenceThreshold = ptr.To(0.0) },
			fields: []string{"spec.convergenceThreshold"},
		},
		{
			name:   "negative length",
			modify: func(e *Evolution) { e.Spec.Length = -1 },
			fields: []string{"spec.length"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := validEvolution()
			tt.modify(obj)
			var got []string
			for _, e := range ValidateEvolution(obj) {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestSelectorDefaultsFitSmallPopulations(t *testing.T) {
	for _, tt := range []struct {
		selector SelectorType
		want     SelectorSpec
	}{
		{selector: SelectorTournament, want: SelectorSpec{Type: SelectorTournament, TournamentSize: 2}},
		{selector: SelectorStochastic, want: SelectorSpec{Type: SelectorStochastic, SampleSize: 2}},
		{selector: SelectorTruncation, want: SelectorSpec{Type: SelectorTruncation, Count: 2}},
		{selector: SelectorRoulette, want: SelectorSpec{Type: SelectorRoulette}},
	} {
		obj := &Evolution{Spec: EvolutionSpec{PopulationSize: 2, Selector: SelectorSpec{Type: tt.selector}}}
		SetDefaults_Evolution(obj)
		assert.Equal(t, tt.want, obj.Spec.Selector)
	}
}
