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

// Shape classifies a factory type by the creational pattern whose
// structural signature its method set must satisfy.
//
// A concrete factory type declares exactly one Shape at the type level;
// the declared value never changes per instance. At construction time the
// contract validator evaluates the type's method descriptors against the
// rule associated with the declared Shape and rejects the type if the rule
// is violated.
//
// The recognized shapes encode textbook creational patterns:
//
//   - ShapeSimple and ShapeMethod demand exactly one hidden creator and
//     nothing else.
//   - ShapeAbstract demands at least one creator and forbids any
//     non-creator helper.
//   - ShapeBuilder demands exactly one creator plus at least one
//     configuration step.
//   - ShapeStatic demands the classic single static entry point named
//     "factory" and nothing instance-level.
//
// The zero value is ShapeUnknown, a defined placeholder meaning "shape not
// declared". ShapeUnknown is a valid constant for serialization purposes
// but is never an acceptable declaration: the contract validator rejects
// it (and any other unrecognized value) as an undefined shape. This is the
// only way an undefined-shape failure can be reached, since the
// enumeration itself is closed.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection.
type Shape int

const (
	// ShapeUnknown represents an undeclared or unclassified shape.
	//
	// This is the zero value of Shape. A factory blueprint that never sets
	// its shape reports ShapeUnknown and fails contract validation with an
	// undefined-shape violation. ShapeUnknown can also be produced by
	// deserializing the literal string "unknown", which allows payloads to
	// state "not declared" explicitly.
	ShapeUnknown Shape = iota

	// ShapeSimple is the simple-factory shape: exactly one hidden
	// create-prefixed method, no other instance methods, no static
	// methods.
	ShapeSimple

	// ShapeAbstract is the abstract-factory shape: one or more hidden
	// create-prefixed methods (a family of creators), no non-create
	// helpers, no static methods.
	ShapeAbstract

	// ShapeMethod is the factory-method shape: exactly one hidden
	// create-prefixed method, no other instance methods, no static
	// methods. Structurally identical to ShapeSimple; the distinction is
	// declarative and preserved for callers that care which pattern a
	// type claims.
	ShapeMethod

	// ShapeStatic is the static-factory shape: exactly one static method
	// named "factory" and no instance-level methods at all.
	ShapeStatic

	// ShapeBuilder is the builder shape: exactly one hidden
	// create-prefixed method plus at least one hidden non-create
	// configuration step, no static methods.
	ShapeBuilder
)

// Compile-time check that Shape implements the model.Model interface.
var _ Model = (*Shape)(nil)

// String constants for Shape values used in serialization, parsing, and
// human-facing output.
//
// These names form the stable, external representation of Shape and MAY be
// persisted in configuration files and JSON/YAML documents. Changing them
// is a breaking change for any consumer that relies on textual
// configuration.
const (
	ShapeUnknownStr  = "unknown"
	ShapeSimpleStr   = "simple"
	ShapeAbstractStr = "abstract"
	ShapeMethodStr   = "method"
	ShapeStaticStr   = "static"
	ShapeBuilderStr  = "builder"
)

// ParseShape converts a textual representation into a Shape value.
//
// The function accepts a small vocabulary of stylistic variants and maps
// them to the corresponding constants:
//
//	"unknown",  "Unknown",  "UNKNOWN"  -> ShapeUnknown
//	"simple",   "Simple",   "SIMPLE"   -> ShapeSimple
//	"abstract", "Abstract", "ABSTRACT" -> ShapeAbstract
//	"method",   "Method",   "METHOD"   -> ShapeMethod
//	"static",   "Static",   "STATIC"   -> ShapeStatic
//	"builder",  "Builder",  "BUILDER"  -> ShapeBuilder
//
// Any other input is treated as invalid, and ParseShape returns a non-nil
// *ParseError. In that case the returned Shape MUST NOT be used; only the
// error is meaningful.
//
// Note that "unknown" parses successfully into ShapeUnknown: a payload may
// legitimately state that a shape was never declared. Whether ShapeUnknown
// is acceptable is decided later, by the contract validator, not by the
// parser.
func ParseShape(s string) (Shape, error) {
	switch s {
	case ShapeUnknownStr, "Unknown", "UNKNOWN":
		return ShapeUnknown, nil
	case ShapeSimpleStr, "Simple", "SIMPLE":
		return ShapeSimple, nil
	case ShapeAbstractStr, "Abstract", "ABSTRACT":
		return ShapeAbstract, nil
	case ShapeMethodStr, "Method", "METHOD":
		return ShapeMethod, nil
	case ShapeStaticStr, "Static", "STATIC":
		return ShapeStatic, nil
	case ShapeBuilderStr, "Builder", "BUILDER":
		return ShapeBuilder, nil
	default:
		return ShapeUnknown, &errors.ParseError{Type: "Shape", Value: s}
	}
}

// String returns the canonical string representation of the Shape value.
//
// The returned string is always lowercase and is suitable for use in
// configuration files, logs, and API responses. If the Shape value is not
// one of the defined constants, String returns "Shape(N)" where N is the
// underlying integer, which signals a configuration or programming error.
func (s Shape) String() string {
	switch s {
	case ShapeUnknown:
		return ShapeUnknownStr
	case ShapeSimple:
		return ShapeSimpleStr
	case ShapeAbstract:
		return ShapeAbstractStr
	case ShapeMethod:
		return ShapeMethodStr
	case ShapeStatic:
		return ShapeStaticStr
	case ShapeBuilder:
		return ShapeBuilderStr
	default:
		return "Shape(" + strconv.Itoa(int(s)) + ")"
	}
}

// Valid reports whether the Shape value is one of the defined constants,
// including the ShapeUnknown placeholder.
//
// This method is primarily useful when Shape values may have been created
// via deserialization, numeric casts, or other untrusted input. Note that
// Valid is a weaker check than Recognized: ShapeUnknown is Valid (it is a
// defined constant) but not Recognized (it is never an acceptable
// declaration).
func (s Shape) Valid() bool {
	return s >= ShapeUnknown && s <= ShapeBuilder
}

// Recognized reports whether the Shape value is one of the five recognized
// factory shapes (simple, abstract, method, static, builder).
//
// The contract validator only accepts recognized shapes; every other
// value, ShapeUnknown included, produces an undefined-shape violation. Code
// that gates behavior on a declared shape SHOULD use Recognized rather
// than Valid.
func (s Shape) Recognized() bool {
	return s >= ShapeSimple && s <= ShapeBuilder
}

// Redacted returns the same string representation as String().
//
// Shape values contain no sensitive information (they are simply enum
// constants), so the redacted form is identical to the regular string
// form. This method implements part of the model.Model interface.
func (s Shape) Redacted() string {
	return s.String()
}

// TypeName returns "Shape", the name of the type for logging and
// debugging.
//
// This method implements part of the model.Model interface, allowing Shape
// values to be used consistently with other model types in error messages
// and logs.
func (s Shape) TypeName() string {
	return "Shape"
}

// IsZero reports whether the Shape has its zero value.
//
// For Shape, the zero value is ShapeUnknown, representing "shape not
// declared". This method implements part of the model.Model interface and
// is useful when checking whether a Shape field was explicitly set.
func (s Shape) IsZero() bool {
	return s == ShapeUnknown
}

// Equal reports whether this Shape is equal to another Shape.
//
// Two Shape values are equal if they represent the same enum constant.
// This method implements the model.Comparable contract and is useful for
// comparisons in tests and rule evaluation.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// Validate checks whether the Shape value is one of the defined constants.
//
// This method returns nil for all defined constants, ShapeUnknown
// included, and a *MarshalError for any value outside the defined range.
// It implements part of the model.Model interface and is typically called
// after deserialization or numeric casts.
//
// Validate deliberately accepts ShapeUnknown: "not declared" is a
// well-formed state for a Shape value in transit. Rejecting undeclared
// shapes is the contract validator's job, at construction time.
func (s Shape) Validate() error {
	if !s.Valid() {
		return &errors.MarshalError{
			Type:  "Shape",
			Value: int(s),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Shape.
//
// A valid Shape is serialized as its canonical string representation (for
// example, "builder"). If the value is not one of the defined constants,
// MarshalJSON returns a *MarshalError and does not produce JSON output,
// preventing invalid Shape values from silently leaking into payloads.
func (s Shape) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Shape", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Shape.
//
// The method accepts both string and numeric JSON representations.
//
//   - String: "simple", "abstract", "method", "static", "builder",
//     "unknown" and their accepted variants, resolved via ParseShape.
//
//   - Number: 0..5, corresponding to the enum constants in declaration
//     order.
//
// String input is the preferred, stable representation. Numeric input is
// accepted for compatibility with configurations that store enum-like
// values as integers. If the input cannot be parsed as either string or
// number, or if it resolves to a value outside the defined constants,
// UnmarshalJSON returns an *UnmarshalError.
func (s *Shape) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseShape(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: err.Error()}
	}
	*s = Shape(i)
	if !s.Valid() {
		return &errors.UnmarshalError{Type: "Shape", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler for Shape.
//
// The textual form is the same lowercase string returned by String(). This
// encoding is commonly used by YAML and other text-based configuration
// formats. If the Shape value is invalid, MarshalText returns a
// *MarshalError.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Shape", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Shape.
//
// The method accepts the same textual vocabulary as ParseShape, using it
// as the single source of truth for mapping strings to Shape values. On
// failure, UnmarshalText returns the underlying *ParseError.
func (s *Shape) UnmarshalText(text []byte) error {
	parsed, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Shape.
//
// A valid Shape is serialized as its canonical string representation (for
// example, "builder"). If the value is not valid, MarshalYAML returns a
// *MarshalError.
func (s Shape) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Shape", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Shape.
//
// The method accepts string representations of Shape values (for example,
// "builder", "static") and resolves them via ParseShape. On failure, it
// returns the underlying *ParseError.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Shape", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseShape(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
