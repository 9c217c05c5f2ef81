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

package introspect

import "reflect"

// TypeName derives the concrete type name of v for use in diagnostics and
// dispatch errors.
//
// Pointers are unwrapped until a non-pointer type is reached, so a
// *WidgetFactory and a WidgetFactory report the same name. For named types
// the bare identifier is returned without its package path; for unnamed
// types (maps, slices, anonymous structs) the reflect string form is
// returned instead, and a nil value reports "<nil>".
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}
