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

// ResolveImports merges, for every file in the bundle, the namespaces of
// the files it imports into the file's own namespace. Each imported file
// contributes its already-wrapped namespace; the merge is not recursive,
// so two declarations occupying the same fully-qualified slot collide even
// when both are messages. The returned files are self-contained and the
// bundle envelope is no longer needed after this stage.
//
// Diagnostics are attributed to the importing file. Missing entries in the
// bundle's maps violate the parser contract and yield internal errors.
func ResolveImports(b *protoast.Bundle) ([]*protoast.File, util.Errors) {
	var errs util.Errors
	var out []*protoast.File

	for _, id := range b.Files {
		f, ok := b.FileMap[id]
		if !ok {
			return nil, util.NewErrs(util.Internalf("bundle file map is missing file %q", id))
		}
		own, ok := f.Annotation.(Namespace)
		if !ok {
			return nil, util.NewErrs(util.Internalf("file %q has no namespace annotation", id))
		}

		merged := Namespace{}
		for k, e := range own {
			merged[k] = e
		}

		for _, d := range f.Decls {
			imp, ok := d.(*protoast.ImportDecl)
			if !ok {
				continue
			}
			target, ok := b.ImportMap[imp.Path]
			if !ok {
				return nil, util.NewErrs(util.Internalf("unresolved import %q in file %q", imp.Path, id))
			}
			tf, ok := b.FileMap[target]
			if !ok {
				return nil, util.NewErrs(util.Internalf("bundle file map is missing imported file %q", target))
			}
			tns, ok := tf.Annotation.(Namespace)
			if !ok {
				return nil, util.NewErrs(util.Internalf("imported file %q has no namespace annotation", target))
			}
			errs = util.AppendErrs(errs, mergeNamespace(merged, tns, id))
		}

		mf := f.Copy()
		mf.Annotation = merged
		out = append(out, mf)
	}
	return out, errs
}

// mergeNamespace copies the entries of src into dst, reporting a
// diagnostic attributed to importer for every key both namespaces define.
// Keys are processed in sorted order so that diagnostics are emitted
// deterministically.
func mergeNamespace(dst, src Namespace, importer string) util.Errors {
	var errs util.Errors
	for _, k := range src.OrderedKeys() {
		if _, ok := dst[k]; ok {
			errs = util.AppendErr(errs, util.Diagf(nil, "Duplicate name in imports: %q in file %q", k, importer))
			continue
		}
		dst[k] = src[k]
	}
	return errs
}
