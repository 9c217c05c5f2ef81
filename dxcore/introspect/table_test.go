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

import (
	stderrors "errors"
	"testing"

	"dirpx.dev/dxfact/dxcore/errors"
	"dirpx.dev/dxfact/dxcore/model"
)

func nopFunc(args ...any) (any, error) {
	return nil, nil
}

func TestIsReserved(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"get", true},
		{"__construct", true},
		{"__destruct", true},
		{"__", true},
		{"createWidget", false},
		{"getter", false},
		{"configure", false},
		{"_single", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsReserved(tt.name); got != tt.want {
				t.Errorf("IsReserved(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTable_Bind(t *testing.T) {
	tests := []struct {
		name    string
		method  model.Method
		fn      Func
		wantErr bool
	}{
		{
			"valid hidden create",
			model.Method{Name: "createWidget", Visibility: model.VisibilityPrivate},
			nopFunc,
			false,
		},
		{
			"valid static factory",
			model.Method{Name: "factory", Visibility: model.VisibilityPublic, Static: true},
			nopFunc,
			false,
		},
		{
			"invalid descriptor",
			model.Method{Name: "", Visibility: model.VisibilityPrivate},
			nopFunc,
			true,
		},
		{
			"reserved accessor name",
			model.Method{Name: "get", Visibility: model.VisibilityPublic},
			nopFunc,
			true,
		},
		{
			"reserved lifecycle name",
			model.Method{Name: "__construct", Visibility: model.VisibilityPublic},
			nopFunc,
			true,
		},
		{
			"nil handler",
			model.Method{Name: "createWidget", Visibility: model.VisibilityPrivate},
			nil,
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable("WidgetFactory")
			err := tbl.Bind(tt.method, tt.fn)
			if (err != nil) != tt.wantErr {
				t.Errorf("Bind() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && tbl.Len() != 0 {
				t.Errorf("Bind() failure left %d entries in the table, want 0", tbl.Len())
			}
		})
	}
}

func TestTable_BindDuplicate(t *testing.T) {
	tbl := NewTable("WidgetFactory")
	m := model.Method{Name: "createWidget", Visibility: model.VisibilityPrivate}

	if err := tbl.Bind(m, nopFunc); err != nil {
		t.Fatalf("first Bind() error = %v", err)
	}
	if err := tbl.Bind(m, nopFunc); err == nil {
		t.Fatal("second Bind() of the same name = nil error, want duplicate rejection")
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Bind, want 1", tbl.Len())
	}
}

func TestTable_DescribeOrder(t *testing.T) {
	tbl := NewTable("WidgetFactory")
	names := []string{"createWidget", "configure", "reset"}
	for _, n := range names {
		m := model.Method{Name: n, Visibility: model.VisibilityPrivate}
		if err := tbl.Bind(m, nopFunc); err != nil {
			t.Fatalf("Bind(%q) error = %v", n, err)
		}
	}

	got := tbl.Describe()
	if len(got) != len(names) {
		t.Fatalf("Describe() returned %d descriptors, want %d", len(got), len(names))
	}
	for i, m := range got {
		if m.Name != names[i] {
			t.Errorf("Describe()[%d].Name = %q, want %q", i, m.Name, names[i])
		}
	}
}

func TestTable_DescribeReturnsCopy(t *testing.T) {
	tbl := NewTable("WidgetFactory")
	m := model.Method{Name: "createWidget", Visibility: model.VisibilityPrivate}
	if err := tbl.Bind(m, nopFunc); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	first := tbl.Describe()
	first[0].Name = "mutated"

	second := tbl.Describe()
	if second[0].Name != "createWidget" {
		t.Errorf("Describe() after caller mutation = %q, want %q", second[0].Name, "createWidget")
	}
}

func TestTable_Lookup(t *testing.T) {
	tbl := NewTable("WidgetFactory")
	m := model.Method{Name: "createWidget", Visibility: model.VisibilityPrivate}
	if err := tbl.Bind(m, nopFunc); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	if fn, ok := tbl.Lookup("createWidget"); !ok || fn == nil {
		t.Errorf("Lookup(%q) = (%v, %v), want bound handler", "createWidget", fn, ok)
	}
	if _, ok := tbl.Lookup("missing"); ok {
		t.Errorf("Lookup(%q) = true, want false", "missing")
	}
}

func TestTable_Invoke(t *testing.T) {
	tbl := NewTable("WidgetFactory")
	m := model.Method{Name: "createWidget", Visibility: model.VisibilityPrivate}
	err := tbl.Bind(m, func(args ...any) (any, error) {
		return len(args), nil
	})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	got, err := tbl.Invoke("createWidget", "a", "b")
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if got != 2 {
		t.Errorf("Invoke() = %v, want 2", got)
	}
}

func TestTable_InvokeUnknown(t *testing.T) {
	tbl := NewTable("WidgetFactory")

	_, err := tbl.Invoke("missing")
	if err == nil {
		t.Fatal("Invoke(missing) = nil error, want DispatchError")
	}

	var de *errors.DispatchError
	if !stderrors.As(err, &de) {
		t.Fatalf("Invoke(missing) error type = %T, want *DispatchError", err)
	}
	if de.Factory != "WidgetFactory" || de.Method != "missing" {
		t.Errorf("DispatchError = {%q, %q}, want {%q, %q}", de.Factory, de.Method, "WidgetFactory", "missing")
	}
	if de.DispatchKind() != errors.KindMethodNotFound {
		t.Errorf("DispatchKind() = %v, want %v", de.DispatchKind(), errors.KindMethodNotFound)
	}
}

func TestTable_Owner(t *testing.T) {
	tbl := NewTable("WidgetFactory")
	if got := tbl.Owner(); got != "WidgetFactory" {
		t.Errorf("Owner() = %q, want %q", got, "WidgetFactory")
	}
}
