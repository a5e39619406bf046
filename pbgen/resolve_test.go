// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pbgen

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openpb/protogen/internal/ptestutil"
	"github.com/openpb/protogen/protoast"
)

// resolvedRefs runs type resolution over f (already carrying a namespace)
// and renders each field's resolved type.
func resolvedRefs(t *testing.T, f *protoast.File) (map[string]string, []string) {
	t.Helper()
	out, errs := ResolveTypeNames(f)
	refs := map[string]string{}
	if out != nil {
		protoast.WalkFields(out, func(m *protoast.Message, fld *protoast.Field) {
			key := m.Name.Name + "." + fld.Name.Name
			switch v := fld.Type.(type) {
			case *protoast.MessageRef:
				refs[key] = "message:" + v.Ref.String()
			case *protoast.EnumRef:
				refs[key] = "enum:" + v.Ref.String()
			case *protoast.UnresolvedType:
				refs[key] = "unresolved:" + v.Name
			}
		})
	}
	return refs, ptestutil.DiagnosticStrings(errs)
}

func TestResolveTypeNames(t *testing.T) {
	tests := []struct {
		name     string
		inFile   *protoast.File
		wantRefs map[string]string
		wantErrs []string
	}{{
		name: "nested message resolved from enclosing message",
		inFile: mkFile("nested.proto",
			mkMessage("Outer",
				mkMessage("Inner",
					mkField(protoast.Required, protoast.TypeInt32, "v", 1),
				),
				mkField(protoast.Required, userType("Inner"), "i", 1),
			),
		),
		wantRefs: map[string]string{"Outer.i": "message:Outer.Inner"},
	}, {
		name: "sibling resolved from file scope",
		inFile: mkFile("sibling.proto",
			mkMessage("Color"),
			mkMessage("Palette",
				mkField(protoast.Optional, userType("Color"), "base", 1),
			),
		),
		wantRefs: map[string]string{"Palette.base": "message:Color"},
	}, {
		name: "enum reference",
		inFile: mkFile("enumref.proto",
			mkEnum("Mode", ev("on", 0)),
			mkMessage("Config",
				mkField(protoast.Required, userType("Mode"), "mode", 1),
			),
		),
		wantRefs: map[string]string{"Config.mode": "enum:Mode"},
	}, {
		name: "dotted reference through messages",
		inFile: mkFile("dotted.proto",
			mkMessage("Outer",
				mkMessage("Inner",
					mkMessage("Leaf"),
				),
			),
			mkMessage("User",
				mkField(protoast.Optional, userType("Outer.Inner.Leaf"), "leaf", 1),
			),
		),
		wantRefs: map[string]string{"User.leaf": "message:Outer.Inner.Leaf"},
	}, {
		name: "inner scope shadows outer",
		inFile: mkFile("shadow.proto",
			mkMessage("Color"),
			mkMessage("Palette",
				mkMessage("Color"),
				mkField(protoast.Optional, userType("Color"), "base", 1),
			),
		),
		wantRefs: map[string]string{"Palette.base": "message:Palette.Color"},
	}, {
		name: "unresolved name",
		inFile: mkFile("missing.proto",
			mkMessage("M",
				mkField(protoast.Required, userType("Ghost"), "g", 1),
			),
		),
		wantErrs: []string{`error: Unresolved name: "Ghost"`},
	}, {
		name: "reference to a field is not a type",
		inFile: mkFile("notatype.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt32, "X", 1),
				mkField(protoast.Required, userType("X"), "y", 2),
			),
		),
		wantErrs: []string{`error: Not a type name: "X"`},
	}, {
		name: "builtins untouched",
		inFile: mkFile("builtin.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt64, "n", 1),
			),
		),
		wantRefs: map[string]string{},
	}}

	for _, tt := range tests {
		built, errs := BuildNamespace(tt.inFile)
		if errs != nil {
			t.Errorf("%s: BuildNamespace: unexpected errors: %v", tt.name, errs)
			continue
		}
		gotRefs, gotErrs := resolvedRefs(t, built)
		if diff := cmp.Diff(tt.wantErrs, gotErrs); diff != "" {
			t.Errorf("%s: ResolveTypeNames diagnostics: (-want, +got):\n%s", tt.name, diff)
			continue
		}
		if tt.wantRefs == nil {
			continue
		}
		if diff := cmp.Diff(tt.wantRefs, gotRefs); diff != "" {
			t.Errorf("%s: resolved references: (-want, +got):\n%s", tt.name, diff)
		}
	}
}

// TestResolveWithPackage checks resolution of names that cross package
// wrapping: a file in a package resolves both its own short names and the
// fully-qualified form.
func TestResolveWithPackage(t *testing.T) {
	f := mkFile("pkg.proto",
		pkgDecl("Acme", "Geo"),
		mkMessage("Point"),
		mkMessage("Line",
			mkField(protoast.Repeated, userType("Point"), "points", 1),
			mkField(protoast.Optional, userType("Acme.Geo.Point"), "origin", 2),
		),
	)
	out, errs := ExtractPackage(f)
	if errs != nil {
		t.Fatalf("ExtractPackage: unexpected errors: %v", errs)
	}
	built, errs := BuildNamespace(out)
	if errs != nil {
		t.Fatalf("BuildNamespace: unexpected errors: %v", errs)
	}

	gotRefs, gotErrs := resolvedRefs(t, built)
	if len(gotErrs) > 0 {
		t.Fatalf("ResolveTypeNames: unexpected diagnostics: %v", gotErrs)
	}
	want := map[string]string{
		"Line.points": "message:Acme.Geo.Point",
		"Line.origin": "message:Acme.Geo.Point",
	}
	if diff := cmp.Diff(want, gotRefs); diff != "" {
		t.Errorf("resolved references: (-want, +got):\n%s", diff)
	}
}
