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
	"strconv"

	"dirpx.dev/dxfact/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// Visibility describes how reachable a bound factory method is for
// external callers.
//
// The contract validator uses Visibility to enforce the shape-independent
// hiding rule: every create-prefixed method MUST be hidden (protected or
// private), so that external code can only reach creation logic through
// the dynamic dispatch path. The distinction between protected and private
// does not affect rule evaluation (both count as hidden) but it is
// preserved in descriptors because it is part of the declared method
// metadata and callers may report on it.
//
// The zero value is VisibilityPublic, matching the common default of
// method declarations.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
type Visibility int

const (
	// VisibilityPublic marks a method as reachable by any caller without
	// going through dynamic dispatch. Creation methods MUST NOT be public.
	VisibilityPublic Visibility = iota

	// VisibilityProtected marks a method as hidden from external callers
	// but reachable by the declaring type and its extensions.
	VisibilityProtected

	// VisibilityPrivate marks a method as hidden from everything except
	// the declaring type itself.
	VisibilityPrivate
)

// Compile-time check that Visibility implements the model.Model interface.
var _ Model = (*Visibility)(nil)

// String constants for Visibility values used in serialization, parsing,
// and human-facing output.
//
// These names form the stable, external representation of Visibility and
// MAY be persisted in configuration files and JSON/YAML documents.
const (
	VisibilityPublicStr    = "public"
	VisibilityProtectedStr = "protected"
	VisibilityPrivateStr   = "private"
)

// ParseVisibility converts a textual representation into a Visibility
// value.
//
// The function accepts a small vocabulary of stylistic variants:
//
//	"public",    "Public",    "PUBLIC"    -> VisibilityPublic
//	"protected", "Protected", "PROTECTED" -> VisibilityProtected
//	"private",   "Private",   "PRIVATE"   -> VisibilityPrivate
//
// Any other input is treated as invalid, and ParseVisibility returns a
// non-nil *ParseError. In that case the returned Visibility MUST NOT be
// used; only the error is meaningful.
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case VisibilityPublicStr, "Public", "PUBLIC":
		return VisibilityPublic, nil
	case VisibilityProtectedStr, "Protected", "PROTECTED":
		return VisibilityProtected, nil
	case VisibilityPrivateStr, "Private", "PRIVATE":
		return VisibilityPrivate, nil
	default:
		return VisibilityPublic, &errors.ParseError{Type: "Visibility", Value: s}
	}
}

// String returns the canonical string representation of the Visibility
// value.
//
// The returned string is always lowercase. If the Visibility value is not
// one of the defined constants, String returns "Visibility(N)" where N is
// the underlying integer.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return VisibilityPublicStr
	case VisibilityProtected:
		return VisibilityProtectedStr
	case VisibilityPrivate:
		return VisibilityPrivateStr
	default:
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

// Valid reports whether the Visibility value is one of the defined
// constants.
//
// This method is primarily useful when Visibility values may have been
// created via deserialization, numeric casts, or other untrusted input.
func (v Visibility) Valid() bool {
	return v >= VisibilityPublic && v <= VisibilityPrivate
}

// Hidden reports whether the Visibility keeps a method out of reach of
// external callers.
//
// Protected and private methods are hidden; public methods are not. The
// contract validator's shape-independent rule is expressed in terms of
// this predicate: every create-prefixed method MUST be Hidden.
func (v Visibility) Hidden() bool {
	return v == VisibilityProtected || v == VisibilityPrivate
}

// Redacted returns the same string representation as String().
//
// Visibility values contain no sensitive information, so the redacted form
// is identical to the regular string form. This method implements part of
// the model.Model interface.
func (v Visibility) Redacted() string {
	return v.String()
}

// TypeName returns "Visibility", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface.
func (v Visibility) TypeName() string {
	return "Visibility"
}

// IsZero reports whether the Visibility has its zero value.
//
// For Visibility, the zero value is VisibilityPublic. This method
// implements part of the model.Model interface.
//
// Note: The zero value (VisibilityPublic) is a valid Visibility, so IsZero
// returning true does not indicate an error condition.
func (v Visibility) IsZero() bool {
	return v == VisibilityPublic
}

// Equal reports whether this Visibility is equal to another Visibility.
//
// Two Visibility values are equal if they represent the same enum
// constant. This method implements the model.Comparable contract.
func (v Visibility) Equal(other Visibility) bool {
	return v == other
}

// Validate checks whether the Visibility value is one of the defined
// constants.
//
// This method returns nil if the Visibility is valid and a *MarshalError
// if the value is outside the defined range. It implements part of the
// model.Model interface and is typically called after deserialization or
// numeric casts.
func (v Visibility) Validate() error {
	if !v.Valid() {
		return &errors.MarshalError{
			Type:  "Visibility",
			Value: int(v),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Visibility.
//
// A valid Visibility is serialized as its canonical string representation
// (for example, "private"). If the value is not valid, MarshalJSON returns
// a *MarshalError and does not produce JSON output.
func (v Visibility) MarshalJSON() ([]byte, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Visibility", Value: int(v)}
	}
	return []byte(`"` + v.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Visibility.
//
// The method accepts both string and numeric JSON representations.
//
//   - String: "public", "protected", "private" and their accepted
//     variants, resolved via ParseVisibility.
//
//   - Number: 0 (VisibilityPublic), 1 (VisibilityProtected),
//     2 (VisibilityPrivate), corresponding to the enum constants in
//     declaration order.
//
// If the input cannot be parsed as either string or number, or if it
// resolves to an invalid Visibility, UnmarshalJSON returns an
// *UnmarshalError.
func (v *Visibility) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Visibility", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Visibility", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseVisibility(str)
		if err != nil {
			return err
		}
		*v = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Visibility", Data: data, Reason: err.Error()}
	}
	*v = Visibility(i)
	if !v.Valid() {
		return &errors.UnmarshalError{Type: "Visibility", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for Visibility.
//
// The textual form is the same lowercase string returned by String(). If
// the Visibility value is invalid, MarshalText returns a *MarshalError.
func (v Visibility) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Visibility", Value: int(v)}
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Visibility.
//
// The method accepts the same textual vocabulary as ParseVisibility, using
// it as the single source of truth. On failure, UnmarshalText returns the
// underlying *ParseError.
func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, err := ParseVisibility(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Visibility.
//
// A valid Visibility is serialized as its canonical string representation.
// If the value is not valid, MarshalYAML returns a *MarshalError.
func (v Visibility) MarshalYAML() (any, error) {
	if !v.Valid() {
		return nil, &errors.MarshalError{Type: "Visibility", Value: int(v)}
	}
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Visibility.
//
// The method accepts string representations of Visibility values and
// resolves them via ParseVisibility. On failure, it returns the underlying
// *ParseError.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Visibility", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseVisibility(str)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
