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

// Package factory assembles validated factory instances from blueprints.
//
// A Blueprint declares its creational shape and binds its methods into a
// method table during assembly. New drives the full construction sequence:
// assemble the table, derive the method-set profile, and evaluate the
// declared shape's contract. Construction is all-or-nothing, so a Factory
// value in caller hands has always passed its contract, and every
// subsequent Call resolves against the same table the contract was
// evaluated on.
package factory

import (
	"dirpx.dev/dxfact/dxcore/contract"
	"dirpx.dev/dxfact/dxcore/introspect"
	"dirpx.dev/dxfact/dxcore/model"
)

// Blueprint is implemented by concrete factory definitions.
//
// Shape declares which creational contract the factory is held to.
// Assemble binds the factory's methods into the provided table and wires
// any product writes through the provided holder; it runs exactly once,
// during New, before the contract is evaluated. Assemble MUST NOT invoke
// any bound handler and MUST NOT retain the table for later mutation.
type Blueprint interface {
	// Shape returns the declared creational shape.
	Shape() model.Shape

	// Assemble binds the blueprint's methods into t. Handlers that
	// produce a product store it through h.
	Assemble(h *Holder, t *introspect.Table) error
}

// Factory is a validated factory instance.
//
// A Factory is only obtainable through New, which guarantees that the
// underlying method set satisfied the declared shape's contract at
// construction time. Methods are reached exclusively through Call; the
// reserved product accessor is always available alongside the bound
// methods. A Factory is not safe for concurrent use.
type Factory struct {
	name   string
	shape  model.Shape
	holder *Holder
	table  *introspect.Table
}

// New constructs and validates a factory instance from b.
//
// The instance name is derived from b's concrete type. New creates an
// empty holder and method table, runs b.Assemble to populate them, and
// then evaluates the declared shape's contract against the assembled
// descriptors. Any assembly error is returned as-is; a contract breach is
// returned as a ViolationError. In both cases no Factory is returned and
// nothing assembled so far is reachable, so a half-built factory can
// never leak to callers.
func New(b Blueprint) (*Factory, error) {
	name := introspect.TypeName(b)
	holder := &Holder{}
	table := introspect.NewTable(name)

	if err := b.Assemble(holder, table); err != nil {
		return nil, err
	}
	if err := contract.Validate(name, b.Shape(), table.Describe()); err != nil {
		return nil, err
	}

	return &Factory{
		name:   name,
		shape:  b.Shape(),
		holder: holder,
		table:  table,
	}, nil
}

// Name returns the factory's instance name, derived from the blueprint's
// concrete type.
func (f *Factory) Name() string {
	return f.name
}

// Shape returns the declared creational shape the factory was validated
// against.
func (f *Factory) Shape() model.Shape {
	return f.shape
}

// Methods returns the bound method descriptors in registration order. The
// reserved product accessor is not listed; it is part of every factory's
// surface implicitly.
func (f *Factory) Methods() []model.Method {
	return f.table.Describe()
}

// Call dispatches a method by name.
//
// The reserved accessor name resolves to the product holder and returns
// the current product, ignoring any arguments. Every other name resolves
// against the bound method table; an unbound name yields a DispatchError
// and leaves the factory fully usable. Resolution is an explicit table
// lookup with no fallback of any kind.
func (f *Factory) Call(name string, args ...any) (any, error) {
	if name == introspect.AccessorName {
		return f.holder.Get(), nil
	}
	return f.table.Invoke(name, args...)
}

// Product returns the current product without going through dispatch. It
// is equivalent to calling the reserved accessor and exists for callers
// that hold the Factory directly.
func (f *Factory) Product() any {
	return f.holder.Get()
}
