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

// Package contract evaluates factory method sets against the structural
// rules of their declared shape.
//
// Every shape constrains its factory's method set through the same five
// counters (create, non-create, public create, static, non-static) plus
// the named static factory flag; the counters are derived once from the
// descriptor set and each shape's rule then reads only the counters it
// cares about. Evaluation is fail-fast: the first violated rule aborts
// construction with a ViolationError carrying the exact rule Kind, and no
// later rule is consulted.
//
// The public-creation guard runs before any shape rule, because a publicly
// visible creation method breaks the dispatch boundary regardless of which
// shape the factory declares.
package contract

import (
	"strconv"

	"dirpx.dev/dxfact/dxcore/errors"
	"dirpx.dev/dxfact/dxcore/model"
)

// rule evaluates one shape's structural constraints against a derived
// counter profile. A nil return means the profile satisfies the shape.
type rule func(factory string, p model.Profile) error

// rules maps each recognized shape to its structural rule. Shapes absent
// from the table are rejected by CheckProfile with KindUndefinedShape.
var rules = map[model.Shape]rule{
	model.ShapeSimple:   checkSingleCreator,
	model.ShapeMethod:   checkSingleCreator,
	model.ShapeAbstract: checkAbstract,
	model.ShapeBuilder:  checkBuilder,
	model.ShapeStatic:   checkStatic,
}

// Validate derives the method-set profile for the named factory and
// evaluates it against the declared shape's structural rules.
//
// The method descriptors are the factory's introspectable surface; reserved
// names MUST already be excluded by the caller. Validate returns nil when
// the method set satisfies the shape, and a ViolationError identifying the
// first broken rule otherwise. The check is purely structural: no handler
// is invoked and no descriptor is mutated.
func Validate(factory string, shape model.Shape, methods []model.Method) error {
	return CheckProfile(factory, shape, model.NewProfile(methods))
}

// CheckProfile evaluates an already-derived counter profile against the
// declared shape's structural rules.
//
// The public-creation guard is applied first for every shape: if any
// create-prefixed method is publicly visible the check fails with
// KindPublicMethodNotAllowed before shape rules are consulted. Shapes
// outside the recognized set fail with KindUndefinedShape. All failures
// are fail-fast; at most one ViolationError is returned per call.
func CheckProfile(factory string, shape model.Shape, p model.Profile) error {
	if p.PublicCreate > 0 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindPublicMethodNotAllowed,
			Reason:  plural(p.PublicCreate, "create method is public", "create methods are public"),
		}
	}

	r, ok := rules[shape]
	if !ok {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindUndefinedShape,
			Reason:  "shape " + shape.String() + " is not recognized",
		}
	}
	return r(factory, p)
}

// checkAbstract enforces the abstract shape: no non-create helpers, no
// statics, and at least one creation method.
func checkAbstract(factory string, p model.Profile) error {
	if p.NonCreate > 0 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindNonCreateMethodNotAllowed,
			Reason:  plural(p.NonCreate, "non-create method declared", "non-create methods declared"),
		}
	}
	if p.Static > 0 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindStaticMethodNotAllowed,
			Reason:  plural(p.Static, "static method declared", "static methods declared"),
		}
	}
	if p.Create < 1 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindCreateMethodCountMismatch,
			Reason:  "want at least 1 create method, got 0",
		}
	}
	return nil
}

// checkBuilder enforces the builder shape: no statics, exactly one
// creation method, and at least one configuration step.
func checkBuilder(factory string, p model.Profile) error {
	if p.Static > 0 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindStaticMethodNotAllowed,
			Reason:  plural(p.Static, "static method declared", "static methods declared"),
		}
	}
	if p.Create != 1 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindCreateMethodCountMismatch,
			Reason:  "want exactly 1 create method, got " + strconv.Itoa(p.Create),
		}
	}
	if p.NonCreate < 1 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindMissingNonCreateMethod,
			Reason:  "want at least 1 non-create method, got 0",
		}
	}
	return nil
}

// checkSingleCreator enforces the simple and method shapes, which share
// the same structure: no statics, exactly one creation method, and no
// other methods at all.
func checkSingleCreator(factory string, p model.Profile) error {
	if p.Static > 0 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindStaticMethodNotAllowed,
			Reason:  plural(p.Static, "static method declared", "static methods declared"),
		}
	}
	if p.Create != 1 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindCreateMethodCountMismatch,
			Reason:  "want exactly 1 create method, got " + strconv.Itoa(p.Create),
		}
	}
	if p.NonCreate > 0 {
		return &errors.ViolationError{
			Factory: factory,
			Kind:    errors.KindNonCreateMethodsForbidden,
			Reason:  plural(p.NonCreate, "non-create method declared", "non-create methods declared"),
		}
	}
	return nil
}

// checkStatic enforces the static shape: the entire surface is a single
// static method named exactly after model.StaticFactoryName, with no
// instance-level methods. The constraint is evaluated as one combined
// condition and reported under a single Kind, since the individual
// counters cannot fail independently in a meaningful way here.
func checkStatic(factory string, p model.Profile) error {
	if p.Static == 1 && p.NonStatic == 0 && p.StaticFactory {
		return nil
	}
	return &errors.ViolationError{
		Factory: factory,
		Kind:    errors.KindStaticFactoryMissingOrMiscounted,
		Reason: "want exactly 1 static method named " + model.StaticFactoryName +
			" and no instance methods, got " + strconv.Itoa(p.Static) +
			" static and " + strconv.Itoa(p.NonStatic) + " instance",
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + pluralForm
}
