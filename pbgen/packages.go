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
	"github.com/openpb/protogen/protoast"
	"github.com/openpb/protogen/util"
)

// ExtractPackage lifts f's package declaration into the file's PackagePath
// attribute. A file without a package declaration belongs to the root
// package; more than one package declaration rejects the file. The
// declarations themselves are left in place.
func ExtractPackage(f *protoast.File) (*protoast.File, util.Errors) {
	out := f.Copy()

	var pkgs []*protoast.PackageDecl
	for _, d := range out.Decls {
		if p, ok := d.(*protoast.PackageDecl); ok {
			pkgs = append(pkgs, p)
		}
	}

	switch len(pkgs) {
	case 0:
		out.PackagePath = nil
	case 1:
		out.PackagePath = pkgs[0].Parts.Copy()
	default:
		return nil, util.NewErrs(util.Diagf(pkgs[1].Loc, "Multiple package declarations in file %q", f.Name))
	}
	return out, nil
}
