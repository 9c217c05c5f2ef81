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

// Package model defines the descriptor types over which the dxfact contract
// validator operates, together with the core contracts that all dxfact
// domain types MUST implement.
//
// The domain types are deliberately small:
//
//   - Shape: the closed enumeration of recognized factory shapes
//     (simple, abstract, method, static, builder).
//   - Visibility: the visibility of a bound method (public, protected,
//     private).
//   - Method: a single method descriptor (name, visibility, staticness)
//     as produced by introspection.
//   - Profile: the derived counters over a method-descriptor set that the
//     shape rules are evaluated against.
//
// Every domain type implements the Model interface or its constituent
// parts (Validatable, Serializable, Loggable, Identifiable, ZeroCheckable).
// These interfaces establish a common contract for validation,
// serialization, logging, and identity that enables generic operations and
// guarantees safety at compile time.
//
// Validation ensures that invalid states cannot be constructed or
// persisted. Serialization provides round-trip guarantees for JSON and
// YAML payloads. Loggable protects sensitive data from accidental exposure
// in logs. Identifiable enables structured logging and precise error
// messages. ZeroCheckable supports optional field detection.
//
// Unless explicitly documented otherwise, implementations are not
// thread-safe for concurrent mutation. All model types in this package are
// immutable value types, making them naturally safe for concurrent read
// access. Callers MUST synchronize any concurrent writes to mutable
// instances.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, MustValidate, ToJSON,
// ToYAML, FromJSON and FromYAML. These helpers rely on the Model contract
// and will fail at compile time if applied to types that do not implement
// Model.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for dxfact domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable
// ensures data integrity by checking invariants; Serializable provides
// round-trip JSON and YAML encoding; Loggable offers both safe (redacted)
// and unsafe (full) string representations; Identifiable supplies a
// canonical type name; and ZeroCheckable detects empty or uninitialized
// instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (the
// unmarshal methods are the only exception). Concurrent reads are safe;
// concurrent writes require external synchronization.
//
// Example implementation outline:
//
//	type MyModel struct {
//	    Field string
//	}
//
//	func (m MyModel) Validate() error   { ... }
//	func (m MyModel) TypeName() string  { return "MyModel" }
//	func (m MyModel) IsZero() bool      { return m.Field == "" }
//	func (m MyModel) Redacted() string  { return "MyModel{...}" }
//	func (m MyModel) String() string    { return "MyModel{Field:" + m.Field + "}" }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*MyModel)(nil)  // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state suitable for use in contract evaluation, persistence, or
// transmission.
//
// The Validate method MUST check all required fields, verify cross-field
// consistency (for example, that a Profile's non-static counter equals the
// sum of its create and non-create counters), and return nil if and only
// if the instance is fully valid. When validation fails, the returned
// error MUST describe what is invalid in a way that helps callers diagnose
// and fix the problem; prefer specific messages like "Method.Name MUST NOT
// be empty" over generic ones.
//
// Validate MUST be fast, deterministic and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT depend on
// external mutable state.
//
// Callers SHOULD invoke Validate at critical boundaries: immediately after
// unmarshaling data from JSON or YAML, after constructing instances from
// user input, and at any API boundary where data crosses trust or
// ownership boundaries.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads
	// but not with concurrent writes.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to
// and deserialized from JSON and YAML formats. All model types MUST
// support both formats to enable configuration files (typically YAML),
// API payloads (typically JSON), and debugging output.
//
// Implementations MUST call Validate before marshaling so that only valid
// instances are serialized, and MUST call Validate after unmarshaling so
// that deserialized data meets all invariants. If either check fails, the
// marshal or unmarshal method MUST return the validation error; callers
// MUST NOT use a receiver left behind by a failed unmarshal.
//
// A value serialized to JSON and then deserialized MUST equal the original
// value, and the same MUST hold for YAML.
//
// Implementations SHOULD use the "type alias" pattern to avoid infinite
// recursion: define a local type alias to the model type, cast the
// receiver to the alias, and delegate to the underlying marshal or
// unmarshal function.
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging.
//
// The Redacted method returns a representation suitable for production
// logging. It MUST hide or mask sensitive fields while preserving enough
// information for troubleshooting. The dxfact model types carry no
// sensitive data (they describe method metadata, not payloads), so their
// redacted forms match their String forms; the contract is kept so that
// callers can treat all DIRPX model types uniformly.
//
// The String method returns a human-readable representation that MAY
// include sensitive data in types that carry it. It is intended for
// development, debugging, and test assertions.
//
// Both methods MUST be fast, MUST NOT mutate the receiver, MUST NOT have
// side effects, and MUST be safe to call concurrently.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging
	// in production.
	Redacted() string

	// String returns a human-readable representation of the instance.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name.
//
// The type name returned by TypeName MUST be constant for a given type:
// all instances of the same type MUST return the same name. The name MUST
// be unique within the dxfact domain, SHOULD follow CamelCase convention
// (for example, "Shape", "Method", "Profile") and MUST NOT include a
// package prefix. Type names are used in error messages (ParseError,
// ValidationError and friends carry them) and in structured logging.
//
// TypeName MUST be fast, MUST NOT allocate, and SHOULD return a string
// constant.
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether
// they are in a zero or empty state. This enables optional field
// detection, default value handling, and conditional logic based on
// whether an instance contains meaningful data.
//
// IsZero MUST return true if and only if the instance is semantically
// empty. For types with multiple fields, IsZero SHOULD return true only
// if all fields are zero. IsZero MUST be fast, deterministic and
// idempotent, MUST NOT allocate, and MUST be safe to call concurrently.
//
// Note that for enum types whose zero value is a defined constant (for
// example, ShapeUnknown or VisibilityPublic), IsZero returning true does
// not by itself indicate an error condition.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types
// that require equality testing in tests, assertions, or rule evaluation.
//
// The Equal method MUST be reflexive, symmetric, transitive and
// consistent. It SHOULD compare all semantically significant fields and
// ignore internal or cached state. Equal MUST NOT mutate the receiver or
// the argument, MUST NOT have side effects, and MUST be safe to call
// concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type. It returns true if both instances represent the same
	// logical value, false otherwise.
	Equal(other T) bool
}
