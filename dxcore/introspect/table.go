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

// Package introspect provides the method table that backs factory
// introspection and dynamic dispatch.
//
// A Table is an explicit registry mapping method names to their descriptors
// and handlers. Factories assemble a Table at construction time by binding
// each method they expose; the contract layer then inspects the table's
// descriptor set, and dispatch resolves call names against the same table.
// Because the table is the single source of truth for both inspection and
// dispatch, a method that passes contract validation is always callable and
// a method that was never bound is always reported as not found.
//
// Registration order is preserved: Describe returns descriptors in the
// order they were bound, which keeps contract diagnostics and table dumps
// deterministic.
package introspect

import (
	"dirpx.dev/dxfact/dxcore/errors"
	"dirpx.dev/dxfact/dxcore/model"
)

// Reserved method names and prefixes excluded from introspection.
//
// Names matching these markers never appear in Describe output and MUST NOT
// be bound through Bind: lifecycle hooks are runtime plumbing rather than
// part of a factory's creation surface, and the product accessor is wired
// by the factory assembler itself.
const (
	// LifecyclePrefix marks lifecycle hook methods. Any name beginning
	// with this prefix is reserved.
	LifecyclePrefix = "__"

	// AccessorName is the reserved name of the product accessor that every
	// factory exposes. The assembler binds it directly against the product
	// holder, bypassing Bind.
	AccessorName = "get"
)

// IsReserved reports whether name is excluded from introspection, either
// because it carries the lifecycle prefix or because it is the product
// accessor name.
func IsReserved(name string) bool {
	if name == AccessorName {
		return true
	}
	return len(name) >= len(LifecyclePrefix) && name[:len(LifecyclePrefix)] == LifecyclePrefix
}

// Func is the handler signature for a bound method. Handlers receive the
// dispatch arguments verbatim and return the call result or an error.
type Func func(args ...any) (any, error)

type entry struct {
	method model.Method
	fn     Func
}

// Table is an ordered registry of method descriptors and their handlers
// for a single factory instance.
//
// A Table MUST be populated through Bind before it is inspected or
// dispatched against. The zero Table is not usable; callers MUST obtain
// one through NewTable. Table is not safe for concurrent mutation;
// factories bind all methods during construction and treat the table as
// read-only afterwards.
type Table struct {
	owner   string
	order   []string
	entries map[string]entry
}

// NewTable returns an empty method table for the named owner. The owner
// name appears in dispatch errors so callers can tell which factory
// rejected a call.
func NewTable(owner string) *Table {
	return &Table{
		owner:   owner,
		entries: make(map[string]entry),
	}
}

// Owner returns the factory name the table was created for.
func (t *Table) Owner() string {
	return t.owner
}

// Bind registers a method descriptor together with its handler.
//
// The descriptor MUST be valid per its Validate method, the name MUST NOT
// be reserved, MUST NOT already be bound, and fn MUST NOT be nil. Bind
// returns a ValidationError describing the first constraint violated;
// on success the descriptor becomes part of the Describe output in
// registration order and the handler becomes reachable through Lookup
// and Invoke.
func (t *Table) Bind(m model.Method, fn Func) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if IsReserved(m.Name) {
		return &errors.ValidationError{
			Type:   "Table",
			Field:  "Name",
			Reason: "name " + m.Name + " is reserved",
		}
	}
	if _, dup := t.entries[m.Name]; dup {
		return &errors.ValidationError{
			Type:   "Table",
			Field:  "Name",
			Reason: "method " + m.Name + " is already bound",
		}
	}
	if fn == nil {
		return &errors.ValidationError{
			Type:   "Table",
			Field:  "Func",
			Reason: "handler for " + m.Name + " is nil",
		}
	}

	t.entries[m.Name] = entry{method: m, fn: fn}
	t.order = append(t.order, m.Name)
	return nil
}

// Describe returns the bound method descriptors in registration order.
// Reserved names never appear because Bind rejects them. The returned
// slice is a copy; callers MAY modify it freely.
func (t *Table) Describe() []model.Method {
	out := make([]model.Method, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.entries[name].method)
	}
	return out
}

// Lookup returns the handler bound under name, and whether one exists.
func (t *Table) Lookup(name string) (Func, bool) {
	e, ok := t.entries[name]
	if !ok {
		return nil, false
	}
	return e.fn, true
}

// Invoke resolves name against the table and calls the bound handler with
// args. When no handler is bound under name, Invoke returns a
// DispatchError identifying the owner and the missing method; the lookup
// consults only explicitly bound names and never falls back to any other
// resolution mechanism.
func (t *Table) Invoke(name string, args ...any) (any, error) {
	fn, ok := t.Lookup(name)
	if !ok {
		return nil, &errors.DispatchError{
			Factory: t.owner,
			Method:  name,
		}
	}
	return fn(args...)
}

// Len returns the number of bound methods.
func (t *Table) Len() int {
	return len(t.order)
}
