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

// Package errors provides reusable error types for the dxfact contract
// validation surface.
//
// This package defines the error vocabulary shared by the dxfact packages
// when parsing, marshaling and unmarshaling strongly typed enum-like values
// (Shape, Visibility) and when enforcing the structural contract of a
// factory type at construction time. By centralizing these types, the
// package eliminates duplication and gives callers a single, stable set of
// errors to match against.
//
// The errors in this package are intentionally simple value carriers with
// stable message formats. They are designed to be:
//
//   - easy to construct from parsing / marshaling / validation code,
//   - easy to recognize via errors.As and type assertions,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type (Method, Profile) fails.
//
//   - ViolationError
//     Returned when a factory type's method set violates the structural
//     contract required by its declared shape. Carries a Kind that
//     identifies the exact rule that was broken.
//
//   - DispatchError
//     Returned when dynamic dispatch cannot locate a requested method name
//     on a factory instance.
//
// # Usage
//
// Contract-enforcement code constructs ViolationError values with the Kind
// matching the first broken rule, and callers distinguish failures by Kind:
//
//	var verr *errors.ViolationError
//	if stderrors.As(err, &verr) && verr.Kind == errors.KindUndefinedShape {
//	    // the declared shape is not one of the recognized values
//	}
package errors

import "strconv"

// Kind identifies the exact contract rule that a factory type or a dispatch
// call violated.
//
// Kind forms a closed set: every failure mode of the dxfact contract
// validator and dispatcher maps to exactly one constant. Callers SHOULD
// match on Kind (rather than on message text) when they need to distinguish
// failure modes programmatically; the formatted messages are stable but are
// intended for humans.
type Kind int

const (
	// KindPublicMethodNotAllowed indicates that a create-prefixed method is
	// publicly visible. Creation methods MUST be hidden (protected or
	// private) regardless of shape, so that external callers can only reach
	// them through dynamic dispatch.
	KindPublicMethodNotAllowed Kind = iota

	// KindNonCreateMethodNotAllowed indicates that an abstract-shaped
	// factory declares a non-create helper method, which the abstract shape
	// forbids.
	KindNonCreateMethodNotAllowed

	// KindStaticMethodNotAllowed indicates that a shape which forbids
	// static methods (abstract, builder, method, simple) declares one.
	KindStaticMethodNotAllowed

	// KindCreateMethodCountMismatch indicates that the number of
	// create-prefixed methods does not match the declared shape's
	// requirement (exactly one for simple/method/builder, at least one for
	// abstract).
	KindCreateMethodCountMismatch

	// KindMissingNonCreateMethod indicates that a builder-shaped factory
	// has no configuration step: the builder shape requires at least one
	// non-create method alongside its single creator.
	KindMissingNonCreateMethod

	// KindNonCreateMethodsForbidden indicates that a simple- or
	// method-shaped factory declares non-create helpers, which those shapes
	// forbid.
	KindNonCreateMethodsForbidden

	// KindStaticFactoryMissingOrMiscounted indicates that a static-shaped
	// factory does not expose exactly one static method named "factory", or
	// declares instance-level methods.
	KindStaticFactoryMissingOrMiscounted

	// KindUndefinedShape indicates that the declared shape value is not one
	// of the five recognized shapes.
	KindUndefinedShape

	// KindMethodNotFound indicates that dynamic dispatch could not locate
	// the requested method name on the factory instance.
	KindMethodNotFound
)

// String constants for Kind values used in error messages and diagnostics.
//
// These names form the stable textual representation of Kind. They MAY be
// relied upon in logs and test assertions; changing them is a breaking
// change for consumers that match on message text.
const (
	KindPublicMethodNotAllowedStr           = "public method not allowed"
	KindNonCreateMethodNotAllowedStr        = "non-create method not allowed"
	KindStaticMethodNotAllowedStr           = "static method not allowed"
	KindCreateMethodCountMismatchStr        = "create method count mismatch"
	KindMissingNonCreateMethodStr           = "missing non-create method"
	KindNonCreateMethodsForbiddenStr        = "non-create methods forbidden"
	KindStaticFactoryMissingOrMiscountedStr = "static factory missing or miscounted"
	KindUndefinedShapeStr                   = "undefined shape"
	KindMethodNotFoundStr                   = "method not found"
)

// String returns the human-readable name of the Kind.
//
// For values outside the defined set, String returns "Kind(N)" where N is
// the underlying integer, mirroring the convention used by dxfact enum
// types. Callers SHOULD treat such output as an indicator of a programming
// error.
func (k Kind) String() string {
	switch k {
	case KindPublicMethodNotAllowed:
		return KindPublicMethodNotAllowedStr
	case KindNonCreateMethodNotAllowed:
		return KindNonCreateMethodNotAllowedStr
	case KindStaticMethodNotAllowed:
		return KindStaticMethodNotAllowedStr
	case KindCreateMethodCountMismatch:
		return KindCreateMethodCountMismatchStr
	case KindMissingNonCreateMethod:
		return KindMissingNonCreateMethodStr
	case KindNonCreateMethodsForbidden:
		return KindNonCreateMethodsForbiddenStr
	case KindStaticFactoryMissingOrMiscounted:
		return KindStaticFactoryMissingOrMiscountedStr
	case KindUndefinedShape:
		return KindUndefinedShapeStr
	case KindMethodNotFound:
		return KindMethodNotFoundStr
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Valid reports whether the Kind value is one of the defined constants.
//
// This method is primarily useful when Kind values may have been created
// via numeric casts or other untrusted input.
func (k Kind) Valid() bool {
	return k >= KindPublicMethodNotAllowed && k <= KindMethodNotFound
}

// ParseError is returned when parsing a string into a strongly typed
// enum-like value fails.
//
// Type identifies the logical type being parsed (for example, "Shape" or
// "Visibility"), and Value contains the exact string that could not be
// interpreted. Callers MAY pattern-match on Type to provide type-specific
// guidance to users.
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Shape").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"dxfact: invalid {Type} value: {Value}"
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	return "dxfact: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled and Value contains the
// underlying numeric value that was deemed invalid. This error is primarily
// a guardrail: it prevents invalid enum-like values from being silently
// emitted into JSON or YAML. In most cases a MarshalError indicates a
// programming error (for example, a zero value that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Shape").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"dxfact: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer.
func (e *MarshalError) Error() string {
	return "dxfact: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload (typically a JSON fragment), and Reason provides a
// human-readable description of what went wrong. Callers MAY wrap
// UnmarshalError with additional context when propagating it further up the
// stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"dxfact: cannot unmarshal {Type}: {Reason}"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose logs; callers can log it separately when
// appropriate.
func (e *UnmarshalError) Error() string {
	return "dxfact: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "Method" or "Profile"), Field optionally identifies which field
// failed validation, Reason provides a human-readable explanation, and
// Value optionally contains the problematic value.
//
// This error is used by Validate() methods in model types to report
// constraint violations, missing required fields, or invalid field values.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"dxfact: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxfact: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxfact: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxfact: invalid " + e.Type + ": " + e.Reason
}

// ViolationError is returned when a factory type's method set violates the
// structural contract required by its declared shape.
//
// Factory identifies the concrete type under construction, Kind identifies
// the exact rule that was broken, and Reason adds the rule-specific detail
// (observed counts, offending method names). A ViolationError is always
// fatal to the construction in progress: no factory instance is returned
// and no bound method has executed.
//
// # Example
//
//	if p.PublicCreate > 0 {
//	    return &errors.ViolationError{
//	        Factory: "WidgetFactory",
//	        Kind:    errors.KindPublicMethodNotAllowed,
//	        Reason:  "1 create method is public",
//	    }
//	}
type ViolationError struct {
	// Factory is the name of the concrete factory type whose contract was
	// violated.
	Factory string

	// Kind identifies the broken contract rule.
	Kind Kind

	// Reason is a short, human-readable explanation with rule-specific
	// detail, such as observed counts.
	Reason string
}

// Error implements the error interface for ViolationError.
//
// The error message format is:
//
//	"dxfact: contract violation in {Factory}: {Kind}: {Reason}"
//
// For example:
//
//	"dxfact: contract violation in WidgetFactory: create method count mismatch: want exactly 1, got 2"
func (e *ViolationError) Error() string {
	return "dxfact: contract violation in " + e.Factory + ": " + e.Kind.String() + ": " + e.Reason
}

// DispatchError is returned when dynamic dispatch cannot locate a requested
// method name on a factory instance.
//
// Factory identifies the instance's concrete type and Method is the name
// that was requested. A DispatchError aborts only the single dispatch call;
// the factory instance itself remains usable.
type DispatchError struct {
	// Factory is the name of the factory type on which dispatch was
	// attempted.
	Factory string

	// Method is the method name that could not be located.
	Method string
}

// Error implements the error interface for DispatchError.
//
// The error message format is:
//
//	"dxfact: method not found: {Factory}.{Method}"
func (e *DispatchError) Error() string {
	return "dxfact: method not found: " + e.Factory + "." + e.Method
}

// DispatchKind returns KindMethodNotFound, the Kind shared by every
// DispatchError. It exists so that callers funneling both construction and
// dispatch failures through Kind-based handling do not need a separate
// code path for DispatchError.
func (e *DispatchError) DispatchKind() Kind {
	return KindMethodNotFound
}
