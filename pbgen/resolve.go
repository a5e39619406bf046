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

// ResolveTypeNames rewrites every user-written type reference in f into a
// fully-qualified reference against the file's visible namespace. A
// reference appearing in a message is tried against candidate scopes from
// the innermost outward: the message's own path, each enclosing path, and
// finally the root package. The first scope containing the name wins.
// Builtin field types are left untouched.
func ResolveTypeNames(f *protoast.File) (*protoast.File, util.Errors) {
	global, ok := f.Annotation.(Namespace)
	if !ok {
		return nil, util.NewErrs(util.Internalf("file %q has no namespace annotation", f.Name))
	}

	var errs util.Errors
	out := f.Copy()
	protoast.WalkFields(out, func(m *protoast.Message, fld *protoast.Field) {
		u, ok := fld.Type.(*protoast.UnresolvedType)
		if !ok {
			return
		}
		resolved, err := resolveName(global, m.Scope.Append(m.Name), u.Name)
		if err != nil {
			errs = util.AppendErr(errs, util.DbgErr(err))
			return
		}
		fld.Type = resolved
	})
	return out, errs
}

// resolveName looks the dotted name up in the candidate scopes derived
// from base, innermost first. The returned reference's path concatenates
// the winning scope prefix with any intermediate message entries the
// dotted name descended through.
func resolveName(global Namespace, base protoast.QualifiedName, name string) (protoast.FieldType, error) {
	for _, scope := range base.Prefixes() {
		ns, ok := global.descend(scope)
		if !ok {
			continue
		}
		mid, entry, ok := ns.Lookup(name)
		if !ok {
			continue
		}
		path := append(scope.Copy(), mid...)
		switch e := entry.(type) {
		case *MessageEntry:
			return &protoast.MessageRef{Ref: protoast.FullQualId{Path: path, Leaf: e.Name}}, nil
		case *EnumEntry:
			return &protoast.EnumRef{Ref: protoast.FullQualId{Path: path, Leaf: e.Name}}, nil
		case *FieldEntry:
			return nil, util.Diagf(nil, "Not a type name: %q", name)
		}
	}
	return nil, util.Diagf(nil, "Unresolved name: %q", name)
}
