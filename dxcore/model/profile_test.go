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

import "testing"

func TestNewProfile(t *testing.T) {
	tests := []struct {
		name    string
		methods []Method
		want    Profile
	}{
		{
			"empty method set",
			nil,
			Profile{},
		},
		{
			"single hidden creator",
			[]Method{
				{Name: "createWidget", Visibility: VisibilityPrivate},
			},
			Profile{Create: 1, NonStatic: 1},
		},
		{
			"creator plus configuration steps",
			[]Method{
				{Name: "createWidget", Visibility: VisibilityProtected},
				{Name: "configure", Visibility: VisibilityPrivate},
				{Name: "reset", Visibility: VisibilityPrivate},
			},
			Profile{Create: 1, NonCreate: 2, NonStatic: 3},
		},
		{
			"public creator is counted twice",
			[]Method{
				{Name: "createWidget", Visibility: VisibilityPublic},
			},
			Profile{Create: 1, PublicCreate: 1, NonStatic: 1},
		},
		{
			"single static factory",
			[]Method{
				{Name: "factory", Visibility: VisibilityPublic, Static: true},
			},
			Profile{Static: 1, StaticFactory: true},
		},
		{
			"static method with another name",
			[]Method{
				{Name: "helper", Visibility: VisibilityPrivate, Static: true},
			},
			Profile{Static: 1},
		},
		{
			"static create-prefixed method is static only",
			[]Method{
				{Name: "createWidget", Visibility: VisibilityPrivate, Static: true},
			},
			Profile{Static: 1},
		},
		{
			"factory name on instance method does not set flag",
			[]Method{
				{Name: "factory", Visibility: VisibilityPrivate},
			},
			Profile{NonCreate: 1, NonStatic: 1},
		},
		{
			"mixed family",
			[]Method{
				{Name: "createChair", Visibility: VisibilityPrivate},
				{Name: "createTable", Visibility: VisibilityProtected},
				{Name: "createSofa", Visibility: VisibilityPublic},
				{Name: "polish", Visibility: VisibilityPrivate},
				{Name: "factory", Visibility: VisibilityPublic, Static: true},
			},
			Profile{Create: 3, NonCreate: 1, PublicCreate: 1, Static: 1, NonStatic: 4, StaticFactory: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewProfile(tt.methods)
			if !got.Equal(tt.want) {
				t.Errorf("NewProfile() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{
			"zero profile",
			Profile{},
			false,
		},
		{
			"consistent counters",
			Profile{Create: 1, NonCreate: 2, NonStatic: 3},
			false,
		},
		{
			"negative counter",
			Profile{Create: -1, NonStatic: -1},
			true,
		},
		{
			"non-static sum mismatch",
			Profile{Create: 1, NonCreate: 1, NonStatic: 3},
			true,
		},
		{
			"public create exceeds create",
			Profile{Create: 1, PublicCreate: 2, NonStatic: 1},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProfile_DerivedAlwaysValid(t *testing.T) {
	// A profile computed from any descriptor set must pass its own
	// consistency checks.
	methods := []Method{
		{Name: "createA", Visibility: VisibilityPublic},
		{Name: "createB", Visibility: VisibilityPrivate},
		{Name: "tune", Visibility: VisibilityProtected},
		{Name: "factory", Static: true},
		{Name: "other", Static: true},
	}

	p := NewProfile(methods)
	if err := p.Validate(); err != nil {
		t.Fatalf("derived profile failed validation: %v", err)
	}
	if !p.StaticFactory {
		t.Error("StaticFactory = false, want true: exactly one static method is named factory")
	}
	if p.Static != 2 {
		t.Errorf("Static = %d, want 2", p.Static)
	}
}

func TestProfile_String(t *testing.T) {
	p := Profile{Create: 1, NonCreate: 2, NonStatic: 3}
	want := "Profile{Create:1, NonCreate:2, PublicCreate:0, Static:0, NonStatic:3, StaticFactory:false}"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestProfile_IsZero(t *testing.T) {
	if !(Profile{}).IsZero() {
		t.Error("zero Profile reported non-zero")
	}
	if (Profile{Create: 1, NonStatic: 1}).IsZero() {
		t.Error("non-empty Profile reported zero")
	}
}

func TestProfile_TypeName(t *testing.T) {
	var p Profile
	if got := p.TypeName(); got != "Profile" {
		t.Errorf("TypeName() = %q, want %q", got, "Profile")
	}
}
