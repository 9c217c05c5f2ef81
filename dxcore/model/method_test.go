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
	"strings"
	"testing"
)

func TestMethod_IsCreate(t *testing.T) {
	tests := []struct {
		name   string
		method Method
		want   bool
	}{
		{
			"create prefix hidden",
			Method{Name: "createWidget", Visibility: VisibilityPrivate},
			true,
		},
		{
			"bare create",
			Method{Name: "create", Visibility: VisibilityProtected},
			true,
		},
		{
			"create prefix public still classifies as create",
			Method{Name: "createWidget", Visibility: VisibilityPublic},
			true,
		},
		{
			"capitalized prefix does not qualify",
			Method{Name: "CreateWidget", Visibility: VisibilityPrivate},
			false,
		},
		{
			"non-create helper",
			Method{Name: "configure", Visibility: VisibilityPrivate},
			false,
		},
		{
			"prefix must be leading",
			Method{Name: "recreate", Visibility: VisibilityPrivate},
			false,
		},
		{
			"static method never counts as create",
			Method{Name: "createWidget", Visibility: VisibilityPrivate, Static: true},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.method.IsCreate(); got != tt.want {
				t.Errorf("IsCreate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMethod_Hidden(t *testing.T) {
	if (Method{Name: "createX", Visibility: VisibilityPublic}).Hidden() {
		t.Error("public method reported hidden")
	}
	if !(Method{Name: "createX", Visibility: VisibilityPrivate}).Hidden() {
		t.Error("private method reported visible")
	}
}

func TestNewMethod(t *testing.T) {
	tests := []struct {
		name       string
		methodName string
		visibility Visibility
		static     bool
		wantErr    bool
	}{
		{"valid hidden creator", "createWidget", VisibilityPrivate, false, false},
		{"valid static factory", "factory", VisibilityProtected, true, false},
		{"empty name", "", VisibilityPrivate, false, true},
		{"whitespace in name", "create widget", VisibilityPrivate, false, true},
		{"invalid visibility", "createWidget", Visibility(9), false, true},
		{"name too long", strings.Repeat("x", MethodNameMaxLength+1), VisibilityPrivate, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMethod(tt.methodName, tt.visibility, tt.static)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewMethod() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !m.IsZero() {
					t.Errorf("NewMethod() on error = %v, want zero Method", m)
				}
				return
			}
			if m.Name != tt.methodName || m.Visibility != tt.visibility || m.Static != tt.static {
				t.Errorf("NewMethod() = %v, want {%s %v %v}", m, tt.methodName, tt.visibility, tt.static)
			}
		})
	}
}

func TestMethod_Validate(t *testing.T) {
	tests := []struct {
		name    string
		method  Method
		wantErr bool
	}{
		{
			"valid",
			Method{Name: "createWidget", Visibility: VisibilityPrivate},
			false,
		},
		{
			"public create is still a well-formed descriptor",
			Method{Name: "createWidget", Visibility: VisibilityPublic},
			false,
		},
		{
			"zero value",
			Method{},
			true,
		},
		{
			"max length boundary",
			Method{Name: strings.Repeat("a", MethodNameMaxLength), Visibility: VisibilityPrivate},
			false,
		},
		{
			"over max length",
			Method{Name: strings.Repeat("a", MethodNameMaxLength+1), Visibility: VisibilityPrivate},
			true,
		},
		{
			"tab in name",
			Method{Name: "create\twidget", Visibility: VisibilityPrivate},
			true,
		},
		{
			"invalid visibility",
			Method{Name: "createWidget", Visibility: Visibility(9)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.method.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMethod_String(t *testing.T) {
	m := Method{Name: "createWidget", Visibility: VisibilityPrivate}
	want := "Method{Name:createWidget, Visibility:private, Static:false}"
	if got := m.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMethod_Equal(t *testing.T) {
	a := Method{Name: "createWidget", Visibility: VisibilityPrivate}
	b := Method{Name: "createWidget", Visibility: VisibilityPrivate}
	c := Method{Name: "createWidget", Visibility: VisibilityProtected}

	if !a.Equal(b) {
		t.Error("identical descriptors reported unequal")
	}
	if a.Equal(c) {
		t.Error("descriptors with different visibility reported equal")
	}
}

func TestMethod_JSON_RoundTrip(t *testing.T) {
	orig := Method{Name: "createWidget", Visibility: VisibilityPrivate, Static: false}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got Method
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !got.Equal(orig) {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestMethod_MarshalJSON_Invalid(t *testing.T) {
	_, err := json.Marshal(Method{})
	if err == nil {
		t.Fatal("Marshal(zero Method) expected error, got nil")
	}
}

func TestMethod_UnmarshalJSON_Invalid(t *testing.T) {
	var m Method
	if err := json.Unmarshal([]byte(`{"name":""}`), &m); err == nil {
		t.Fatal("Unmarshal of empty-name descriptor expected error, got nil")
	}
}

func TestMethod_TypeName(t *testing.T) {
	var m Method
	if got := m.TypeName(); got != "Method" {
		t.Errorf("TypeName() = %q, want %q", got, "Method")
	}
}
