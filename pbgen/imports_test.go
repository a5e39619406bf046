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
	"github.com/openpb/protogen/util"
)

// builtFile runs the pre-import stages on a file so that it carries a
// namespace annotation, failing the test on any diagnostic.
func builtFile(t *testing.T, f *protoast.File) *protoast.File {
	t.Helper()
	out, errs := ExtractPackage(f)
	if errs != nil {
		t.Fatalf("ExtractPackage(%s): unexpected errors: %v", f.Name, errs)
	}
	out, errs = BuildNamespace(out)
	if errs != nil {
		t.Fatalf("BuildNamespace(%s): unexpected errors: %v", f.Name, errs)
	}
	return out
}

func TestResolveImports(t *testing.T) {
	a := builtFile(t, mkFile("a.proto", mkEnum("Color", ev("red", 0))))
	b := builtFile(t, mkFile("b.proto",
		&protoast.ImportDecl{Path: "a.proto"},
		mkMessage("Palette",
			mkField(protoast.Optional, userType("Color"), "base", 1),
		),
	))

	files, errs := ResolveImports(&protoast.Bundle{
		Files:     []string{"a.proto", "b.proto"},
		ImportMap: map[string]string{"a.proto": "a.proto"},
		FileMap:   map[string]*protoast.File{"a.proto": a, "b.proto": b},
	})
	if errs != nil {
		t.Fatalf("ResolveImports: unexpected errors: %v", errs)
	}
	if len(files) != 2 {
		t.Fatalf("ResolveImports: got %d files, want 2", len(files))
	}

	// b sees its own Palette plus everything a declared.
	ns := files[1].Annotation.(Namespace)
	if diff := cmp.Diff([]string{"Color", "Palette", "red"}, ns.OrderedKeys()); diff != "" {
		t.Errorf("importer namespace keys: (-want, +got):\n%s", diff)
	}

	// a is unchanged by being imported.
	ns = files[0].Annotation.(Namespace)
	if diff := cmp.Diff([]string{"Color", "red"}, ns.OrderedKeys()); diff != "" {
		t.Errorf("imported file namespace keys: (-want, +got):\n%s", diff)
	}
}

// TestResolveImportsCollision covers two files declaring the same
// top-level name, one importing the other.
func TestResolveImportsCollision(t *testing.T) {
	a := builtFile(t, mkFile("a.proto", mkMessage("Color")))
	b := builtFile(t, mkFile("b.proto",
		&protoast.ImportDecl{Path: "a.proto"},
		mkMessage("Color"),
	))

	_, errs := ResolveImports(&protoast.Bundle{
		Files:     []string{"a.proto", "b.proto"},
		ImportMap: map[string]string{"a.proto": "a.proto"},
		FileMap:   map[string]*protoast.File{"a.proto": a, "b.proto": b},
	})
	want := []string{`error: Duplicate name in imports: "Color" in file "b.proto"`}
	if diff := cmp.Diff(want, ptestutil.DiagnosticStrings(errs)); diff != "" {
		t.Errorf("ResolveImports diagnostics: (-want, +got):\n%s", diff)
	}
}

// TestResolveImportsPackages checks that same-named types in different
// packages do not collide: each file contributes its names under its own
// package wrapper.
func TestResolveImportsPackages(t *testing.T) {
	a := builtFile(t, mkFile("a.proto", pkgDecl("PkgA"), mkMessage("Color")))
	b := builtFile(t, mkFile("b.proto",
		pkgDecl("PkgB"),
		&protoast.ImportDecl{Path: "a.proto"},
		mkMessage("Color"),
	))

	files, errs := ResolveImports(&protoast.Bundle{
		Files:     []string{"a.proto", "b.proto"},
		ImportMap: map[string]string{"a.proto": "a.proto"},
		FileMap:   map[string]*protoast.File{"a.proto": a, "b.proto": b},
	})
	if errs != nil {
		t.Fatalf("ResolveImports: unexpected errors: %v", errs)
	}
	ns := files[1].Annotation.(Namespace)
	if diff := cmp.Diff([]string{"PkgA", "PkgB"}, ns.OrderedKeys()); diff != "" {
		t.Errorf("importer namespace keys: (-want, +got):\n%s", diff)
	}
}

func TestResolveImportsParserContract(t *testing.T) {
	b := builtFile(t, mkFile("b.proto", &protoast.ImportDecl{Path: "missing.proto"}))
	_, errs := ResolveImports(&protoast.Bundle{
		Files:   []string{"b.proto"},
		FileMap: map[string]*protoast.File{"b.proto": b},
	})
	if !util.IsInternal(errs) {
		t.Fatalf("ResolveImports with unresolved import: got %v, want internal error", errs)
	}
}
