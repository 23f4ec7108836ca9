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
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Decode parses an Evolution from YAML or JSON, applies defaults and
// validates it. Unknown fields are rejected.
func Decode(data []byte) (*Evolution, error) {
	obj := &Evolution{}
	if err := yaml.UnmarshalStrict(data, obj); err != nil {
		return nil, fmt.Errorf("decoding evolution: %w", err)
	}
	SetDefaults_Evolution(obj)
	if errs := ValidateEvolution(obj); len(errs) > 0 {
		return nil, fmt.Errorf("invalid evolution %q: %w", obj.Name, errs.ToAggregate())
	}
	return obj, nil
}

// Load reads and decodes the Evolution stored at path.
func Load(path string) (*Evolution, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Encode renders obj as YAML.
func Encode(obj *Evolution) ([]byte, error) {
	return yaml.Marshal(obj)
}
