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
	"strings"

	"dirpx.dev/dxfact/dxcore/errors"
	"gopkg.in/yaml.v3"
)

const (
	// CreatePrefix is the literal name prefix that marks a method as a
	// creation method.
	//
	// Contract evaluation classifies every non-static method by whether its
	// name begins with this prefix: "createWidget" and "create" itself are
	// creation methods, "configure" and "reset" are not. The prefix match
	// is exact and case-sensitive; "Create" or "CREATE" do not qualify.
	// Changing this constant is a breaking change for every factory type
	// validated by dxfact.
	CreatePrefix = "create"

	// MethodNameMaxLength is the maximum allowed length for a method name,
	// measured in bytes.
	//
	// This limit prevents abuse and keeps names usable in logs, error
	// messages and dispatch tables. 128 bytes is far beyond any reasonable
	// method name while still bounding descriptor size. Names exceeding
	// this limit MUST be rejected during validation.
	MethodNameMaxLength = 128
)

// Method is a single method descriptor as produced by introspection of a
// factory type: the method's name, its declared visibility, and whether it
// is static (type-level) rather than instance-level.
//
// Method carries no reference to the method's implementation. The contract
// validator never inspects or invokes creation logic; it reasons purely
// over this metadata. Descriptors are produced fresh on every validation
// pass and owned exclusively by that pass.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// The zero value of Method (all fields zero) represents "no method" and
// fails validation.
//
// Example values:
//
//	Method{Name: "createWidget", Visibility: VisibilityPrivate}
//	Method{Name: "configure", Visibility: VisibilityProtected}
//	Method{Name: "factory", Static: true}
type Method struct {
	// Name is the method's declared name, exactly as it is dispatched.
	//
	// Name MUST be non-empty, MUST NOT contain whitespace, and MUST NOT
	// exceed MethodNameMaxLength bytes. Whether the name begins with
	// CreatePrefix determines its classification during contract
	// evaluation.
	Name string `json:"name" yaml:"name"`

	// Visibility is the method's declared visibility.
	//
	// The zero value is VisibilityPublic. Creation methods MUST be hidden
	// (protected or private); that rule is enforced by the contract
	// validator, not by descriptor validation, so that descriptors can
	// faithfully represent malformed types.
	Visibility Visibility `json:"visibility" yaml:"visibility"`

	// Static reports whether the method is type-level rather than
	// instance-level.
	//
	// Static methods never count as creation methods regardless of their
	// name; the only static method with contract significance is the one
	// named "factory" required by the static shape.
	Static bool `json:"static" yaml:"static"`
}

// Compile-time check that Method implements the model.Model interface.
var _ Model = (*Method)(nil)

// NewMethod constructs a Method descriptor and validates it.
//
// This is the preferred way to build descriptors from introspection or
// test code: the returned Method is guaranteed to be well-formed. If
// validation fails, NewMethod returns the zero Method and the validation
// error.
//
// Example:
//
//	m, err := model.NewMethod("createWidget", model.VisibilityPrivate, false)
func NewMethod(name string, visibility Visibility, static bool) (Method, error) {
	m := Method{
		Name:       name,
		Visibility: visibility,
		Static:     static,
	}

	if err := m.Validate(); err != nil {
		return Method{}, err
	}

	return m, nil
}

// IsCreate reports whether the descriptor names a creation method: a
// non-static method whose name begins with the literal CreatePrefix.
//
// Static methods are never creation methods, even when their names carry
// the prefix; the static shape's entry point is identified by the exact
// name "factory" instead.
func (m Method) IsCreate() bool {
	return !m.Static && strings.HasPrefix(m.Name, CreatePrefix)
}

// Hidden reports whether the method is hidden from external callers,
// delegating to the Visibility's Hidden predicate.
func (m Method) Hidden() bool {
	return m.Visibility.Hidden()
}

// String returns the human-readable representation of the Method for
// display and debugging purposes. This method implements the fmt.Stringer
// interface and satisfies the model.Loggable contract.
//
// The output format is:
//
//	Method{Name:createWidget, Visibility:private, Static:false}
func (m Method) String() string {
	return fmt.Sprintf("Method{Name:%s, Visibility:%s, Static:%t}",
		m.Name,
		m.Visibility.String(),
		m.Static)
}

// Redacted returns the same string representation as String().
//
// Method descriptors contain no sensitive data (a method name and two
// flags), so the redacted form is identical to the regular string form.
// This method implements part of the model.Model interface.
func (m Method) Redacted() string {
	return m.String()
}

// TypeName returns "Method", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface.
func (m Method) TypeName() string {
	return "Method"
}

// IsZero reports whether the Method has its zero value: empty name, public
// visibility, non-static.
//
// A zero Method represents "no method" and fails validation. This method
// implements part of the model.Model interface.
func (m Method) IsZero() bool {
	return m.Name == "" && m.Visibility == VisibilityPublic && !m.Static
}

// Equal reports whether this Method is equal to another Method.
//
// Two descriptors are equal if their names, visibilities and staticness
// all match. This method implements the model.Comparable contract.
func (m Method) Equal(other Method) bool {
	return m.Name == other.Name &&
		m.Visibility == other.Visibility &&
		m.Static == other.Static
}

// Validate checks that the Method descriptor satisfies all invariants.
//
// The checks performed are:
//
//   - Name MUST be non-empty.
//   - Name MUST NOT exceed MethodNameMaxLength bytes.
//   - Name MUST NOT contain whitespace characters.
//   - Visibility MUST be one of the defined constants.
//
// Validate does NOT enforce contract rules such as "creation methods must
// be hidden": a descriptor may faithfully describe a malformed method.
// Contract rules are evaluated by the contract package over descriptor
// sets, not over individual descriptors.
//
// This method implements part of the model.Model interface.
func (m Method) Validate() error {
	if m.Name == "" {
		return &errors.ValidationError{
			Type:   "Method",
			Field:  "Name",
			Reason: "must not be empty",
		}
	}

	if len(m.Name) > MethodNameMaxLength {
		return &errors.ValidationError{
			Type:   "Method",
			Field:  "Name",
			Reason: fmt.Sprintf("must not exceed %d bytes", MethodNameMaxLength),
			Value:  m.Name,
		}
	}

	if strings.ContainsAny(m.Name, " \t\n\r") {
		return &errors.ValidationError{
			Type:   "Method",
			Field:  "Name",
			Reason: "must not contain whitespace",
			Value:  m.Name,
		}
	}

	if !m.Visibility.Valid() {
		return &errors.ValidationError{
			Type:   "Method",
			Field:  "Visibility",
			Reason: "must be public, protected or private",
			Value:  int(m.Visibility),
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Method to a JSON
// object. This method satisfies part of the model.Serializable interface
// requirement.
//
// MarshalJSON first validates the descriptor by calling Validate. If
// validation fails, marshaling fails with the validation error, preventing
// malformed descriptors from being serialized.
func (m Method) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	// Use type alias to avoid infinite recursion
	type method Method
	return json.Marshal(method(m))
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON object
// into a Method value. This method satisfies part of the
// model.Serializable interface requirement.
//
// After unmarshaling the JSON data, Validate is called to ensure the
// resulting descriptor conforms to all constraints. If validation fails,
// unmarshaling fails with an error describing the validation failure.
func (m *Method) UnmarshalJSON(data []byte) error {
	type method Method
	if err := json.Unmarshal(data, (*method)(m)); err != nil {
		return &errors.UnmarshalError{
			Type:   m.TypeName(),
			Data:   data,
			Reason: err.Error(),
		}
	}

	if err := m.Validate(); err != nil {
		return &errors.UnmarshalError{
			Type:   m.TypeName(),
			Data:   data,
			Reason: fmt.Sprintf("validation failed: %v", err),
		}
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Method to a YAML
// object. This method satisfies part of the model.Serializable interface
// requirement.
//
// MarshalYAML first validates the descriptor by calling Validate. If
// validation fails, marshaling fails with the validation error.
func (m Method) MarshalYAML() (any, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	// Use type alias to avoid infinite recursion
	type method Method
	return method(m), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML object
// into a Method value. This method satisfies part of the
// model.Serializable interface requirement.
//
// After unmarshaling the YAML data, Validate is called to ensure the
// resulting descriptor conforms to all constraints. If validation fails,
// unmarshaling fails with an error describing the validation failure.
func (m *Method) UnmarshalYAML(node *yaml.Node) error {
	type method Method
	if err := node.Decode((*method)(m)); err != nil {
		return &errors.UnmarshalError{
			Type:   m.TypeName(),
			Data:   []byte(node.Value),
			Reason: err.Error(),
		}
	}

	if err := m.Validate(); err != nil {
		return &errors.UnmarshalError{
			Type:   m.TypeName(),
			Data:   []byte(node.Value),
			Reason: fmt.Sprintf("validation failed: %v", err),
		}
	}

	return nil
}
