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

	"dirpx.dev/dxfact/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// StaticFactoryName is the exact name the static shape's single static
// entry point must carry.
//
// Profile derivation reports whether a descriptor set contains exactly one
// static method with this name; the static shape's rule requires it. The
// match is exact and case-sensitive.
const StaticFactoryName = "factory"

// Profile holds the derived counters over a method-descriptor set that the
// shape rules are evaluated against.
//
// A Profile is computed from descriptors by NewProfile and consumed by the
// contract validator; it is the entire input to rule evaluation. Keeping
// the counters as an explicit value type makes the rules testable against
// synthetic counter sets without constructing descriptor slices.
//
// The counters are:
//
//   - Create: non-static methods whose name begins with CreatePrefix.
//   - NonCreate: non-static methods whose name does not.
//   - PublicCreate: methods in the Create set that are publicly visible.
//   - Static: all static methods.
//   - NonStatic: all non-static methods (Create + NonCreate).
//   - StaticFactory: whether exactly one static method is named
//     StaticFactoryName.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
//
// The zero value of Profile describes an empty method set and is valid.
type Profile struct {
	// Create is the number of non-static methods whose name begins with
	// CreatePrefix.
	Create int `json:"create" yaml:"create"`

	// NonCreate is the number of non-static methods whose name does not
	// begin with CreatePrefix.
	NonCreate int `json:"non_create" yaml:"non_create"`

	// PublicCreate is the number of methods in the Create set that are
	// publicly visible. Any non-zero value violates the shape-independent
	// hiding rule.
	PublicCreate int `json:"public_create" yaml:"public_create"`

	// Static is the number of static methods.
	Static int `json:"static" yaml:"static"`

	// NonStatic is the number of non-static methods. It MUST equal
	// Create + NonCreate.
	NonStatic int `json:"non_static" yaml:"non_static"`

	// StaticFactory reports whether exactly one static method is named
	// StaticFactoryName.
	StaticFactory bool `json:"static_factory" yaml:"static_factory"`
}

// Compile-time check that Profile implements the model.Model interface.
var _ Model = (*Profile)(nil)

// NewProfile derives the rule-evaluation counters from a method-descriptor
// sequence.
//
// The derivation is a single pass over the descriptors:
//
//   - a static method increments Static, and is checked against
//     StaticFactoryName for the StaticFactory flag;
//   - a non-static method increments NonStatic and either Create (name
//     begins with CreatePrefix) or NonCreate; a non-hidden member of the
//     Create set also increments PublicCreate.
//
// NewProfile expects the caller to have already removed reserved names
// (lifecycle hooks and the product accessor) from the sequence; the
// introspect package's Describe does that. No descriptor is skipped here.
//
// The descriptors themselves are not validated; NewProfile counts exactly
// what it is given. Callers that need well-formedness guarantees SHOULD
// run ValidateAll over the descriptors first.
func NewProfile(methods []Method) Profile {
	var p Profile
	namedFactories := 0

	for _, m := range methods {
		if m.Static {
			p.Static++
			if m.Name == StaticFactoryName {
				namedFactories++
			}
			continue
		}

		p.NonStatic++
		if m.IsCreate() {
			p.Create++
			if !m.Hidden() {
				p.PublicCreate++
			}
		} else {
			p.NonCreate++
		}
	}

	p.StaticFactory = namedFactories == 1

	return p
}

// String returns the human-readable representation of the Profile for
// display and debugging purposes. This method implements the fmt.Stringer
// interface and satisfies the model.Loggable contract.
//
// The output format is:
//
//	Profile{Create:1, NonCreate:2, PublicCreate:0, Static:0, NonStatic:3, StaticFactory:false}
func (p Profile) String() string {
	return fmt.Sprintf("Profile{Create:%d, NonCreate:%d, PublicCreate:%d, Static:%d, NonStatic:%d, StaticFactory:%t}",
		p.Create,
		p.NonCreate,
		p.PublicCreate,
		p.Static,
		p.NonStatic,
		p.StaticFactory)
}

// Redacted returns the same string representation as String().
//
// A Profile is a handful of counters with no sensitive content, so the
// redacted form is identical to the regular string form. This method
// implements part of the model.Model interface.
func (p Profile) Redacted() string {
	return p.String()
}

// TypeName returns "Profile", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface.
func (p Profile) TypeName() string {
	return "Profile"
}

// IsZero reports whether the Profile has its zero value: all counters zero
// and no named static factory.
//
// A zero Profile describes an empty method set, which is a valid (if
// rarely useful) state. This method implements part of the model.Model
// interface.
func (p Profile) IsZero() bool {
	return p.Create == 0 &&
		p.NonCreate == 0 &&
		p.PublicCreate == 0 &&
		p.Static == 0 &&
		p.NonStatic == 0 &&
		!p.StaticFactory
}

// Equal reports whether this Profile is equal to another Profile.
//
// Two Profiles are equal if all their counters and the StaticFactory flag
// match. This method implements the model.Comparable contract.
func (p Profile) Equal(other Profile) bool {
	return p == other
}

// Validate checks that the Profile's counters are internally consistent.
//
// The checks performed are:
//
//   - every counter MUST be non-negative,
//   - NonStatic MUST equal Create + NonCreate,
//   - PublicCreate MUST NOT exceed Create.
//
// A Profile produced by NewProfile always passes; Validate exists to catch
// hand-built or deserialized counter sets that could not have come from
// any real method-descriptor sequence.
//
// This method implements part of the model.Model interface.
func (p Profile) Validate() error {
	if p.Create < 0 || p.NonCreate < 0 || p.PublicCreate < 0 || p.Static < 0 || p.NonStatic < 0 {
		return &errors.ValidationError{
			Type:   "Profile",
			Reason: "counters must be non-negative",
			Value:  p.String(),
		}
	}

	if p.NonStatic != p.Create+p.NonCreate {
		return &errors.ValidationError{
			Type:   "Profile",
			Field:  "NonStatic",
			Reason: fmt.Sprintf("must equal Create + NonCreate (%d + %d), got %d", p.Create, p.NonCreate, p.NonStatic),
		}
	}

	if p.PublicCreate > p.Create {
		return &errors.ValidationError{
			Type:   "Profile",
			Field:  "PublicCreate",
			Reason: fmt.Sprintf("must not exceed Create (%d), got %d", p.Create, p.PublicCreate),
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Profile to a JSON
// object. This method satisfies part of the model.Serializable interface
// requirement.
//
// MarshalJSON first validates the Profile by calling Validate. If
// validation fails, marshaling fails with the validation error, preventing
// inconsistent counter sets from being serialized.
func (p Profile) MarshalJSON() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}

	// Use type alias to avoid infinite recursion
	type profile Profile
	return json.Marshal(profile(p))
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON object
// into a Profile value. This method satisfies part of the
// model.Serializable interface requirement.
//
// After unmarshaling the JSON data, Validate is called to ensure the
// resulting counter set is internally consistent. If validation fails,
// unmarshaling fails with an error describing the validation failure.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type profile Profile
	if err := json.Unmarshal(data, (*profile)(p)); err != nil {
		return &errors.UnmarshalError{
			Type:   p.TypeName(),
			Data:   data,
			Reason: err.Error(),
		}
	}

	if err := p.Validate(); err != nil {
		return &errors.UnmarshalError{
			Type:   p.TypeName(),
			Data:   data,
			Reason: fmt.Sprintf("validation failed: %v", err),
		}
	}

	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Profile to a YAML
// object. This method satisfies part of the model.Serializable interface
// requirement.
//
// MarshalYAML first validates the Profile by calling Validate. If
// validation fails, marshaling fails with the validation error.
func (p Profile) MarshalYAML() (any, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", p.TypeName(), err)
	}

	// Use type alias to avoid infinite recursion
	type profile Profile
	return profile(p), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML object
// into a Profile value. This method satisfies part of the
// model.Serializable interface requirement.
//
// After unmarshaling the YAML data, Validate is called to ensure the
// resulting counter set is internally consistent. If validation fails,
// unmarshaling fails with an error describing the validation failure.
func (p *Profile) UnmarshalYAML(node *yaml.Node) error {
	type profile Profile
	if err := node.Decode((*profile)(p)); err != nil {
		return &errors.UnmarshalError{
			Type:   p.TypeName(),
			Data:   []byte(node.Value),
			Reason: err.Error(),
		}
	}

	if err := p.Validate(); err != nil {
		return &errors.UnmarshalError{
			Type:   p.TypeName(),
			Data:   []byte(node.Value),
			Reason: fmt.Sprintf("validation failed: %v", err),
		}
	}

	return nil
}
