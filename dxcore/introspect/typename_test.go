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

import "testing"

type widgetFactory struct{}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "<nil>"},
		{"named struct", widgetFactory{}, "widgetFactory"},
		{"pointer to named struct", &widgetFactory{}, "widgetFactory"},
		{"double pointer", func() any { p := &widgetFactory{}; return &p }(), "widgetFactory"},
		{"string", "hello", "string"},
		{"int", 42, "int"},
		{"unnamed slice", []int{1}, "[]int"},
		{"unnamed map", map[string]int{}, "map[string]int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.v); got != tt.want {
				t.Errorf("TypeName(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
