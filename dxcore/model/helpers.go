/*
   Copyright 2025 The DIRPX Authors

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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation errors
// encountered during the batch validation process, rather than stopping at
// the first failure.
//
// The function iterates through each model in the provided slice and
// invokes its Validate method. When a model fails validation, the error is
// wrapped with contextual information including the model's position in the
// slice (zero-indexed) and its type name obtained from TypeName, so callers
// can identify exactly which models failed and why. The typical caller is a
// method-table assembler validating a batch of Method descriptors before
// contract evaluation.
//
// If one or more models fail validation, ValidateAll returns a single
// combined error that aggregates all individual failures using
// rxmerr.Collector. If all models pass, the function returns nil. Empty
// slices are considered valid. The function never panics and always
// processes the entire slice even when early elements fail, ensuring
// complete error reporting.
//
// Note that only pointer model types satisfy the full Model contract (the
// unmarshal methods require pointer receivers), so batch helpers operate
// on slices of pointers.
//
// Example usage for batch validation of method descriptors:
//
//	methods := []*model.Method{m1, m2, m3}
//	if err := model.ValidateAll(methods); err != nil {
//	    return err
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// MustValidate validates a model and panics if validation fails, providing
// a convenient way to assert model validity in contexts where an invalid
// model represents a programming error rather than a recoverable runtime
// error.
//
// The function invokes the model's Validate method. If validation succeeds,
// MustValidate returns the model unchanged, allowing inline initialization
// patterns. If validation fails, the function panics with a formatted
// message that includes the model's type name and the validation error.
//
// Callers MUST only use MustValidate in contexts where panic is an
// acceptable control flow mechanism, such as test setup or package
// initialization code executed during program startup. Callers MUST NOT
// use MustValidate in library code paths reachable from user input.
//
// Example usage in test setup where invalid data indicates a test bug:
//
//	m := model.MustValidate(&model.Method{Name: "createWidget", Visibility: model.VisibilityPrivate})
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// ToJSON converts a model to JSON bytes after validating that the model is
// in a consistent and valid state, enforcing the contract that only valid
// models can be serialized.
//
// The function first invokes the model's Validate method. If validation
// fails, ToJSON returns an error that wraps the validation failure with the
// model's type name, and no marshaling is attempted. If validation
// succeeds, ToJSON invokes json.Marshal; the model's own MarshalJSON
// implementation applies, and any marshaling error is returned directly.
//
// Callers SHOULD use ToJSON instead of calling json.Marshal directly when
// they need the additional safety guarantee; they MAY call json.Marshal
// directly when the model has already been validated through other means.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that the model is
// in a consistent and valid state, enforcing the contract that only valid
// models can be serialized.
//
// The function first invokes the model's Validate method. If validation
// fails, ToYAML returns an error that wraps the validation failure with the
// model's type name, and no marshaling is attempted. If validation
// succeeds, ToYAML invokes yaml.Marshal; the model's own MarshalYAML
// implementation applies, and any marshaling error is returned directly.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result,
// enforcing the contract that deserialized models are always validated
// before being returned to callers.
//
// The function first invokes json.Unmarshal to decode the JSON bytes into
// the provided model pointer. If unmarshaling fails, FromJSON returns an
// error describing the failure and no validation is attempted. If
// unmarshaling succeeds, FromJSON invokes the model's Validate method; if
// validation fails, FromJSON returns an error indicating that the
// unmarshaled model is invalid even though the JSON syntax was correct.
//
// Callers MUST provide a pointer to a model variable that will receive the
// unmarshaled result. If FromJSON returns an error, the model variable's
// state is undefined and MUST NOT be used.
//
// Example usage for safely loading a descriptor from JSON:
//
//	m := &model.Method{}
//	if err := model.FromJSON(data, &m); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result,
// enforcing the contract that deserialized models are always validated
// before being returned to callers.
//
// The function first invokes yaml.Unmarshal to decode the YAML bytes into
// the provided model pointer. If unmarshaling fails, FromYAML returns an
// error describing the failure and no validation is attempted. If
// unmarshaling succeeds, FromYAML invokes the model's Validate method; if
// validation fails, FromYAML returns an error indicating that the
// unmarshaled model is invalid even though the YAML syntax was correct.
//
// Callers MUST provide a pointer to a model variable that will receive the
// unmarshaled result. If FromYAML returns an error, the model variable's
// state is undefined and MUST NOT be used.
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}
