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
	"strings"

	"github.com/openpb/protogen/genutil"
	"github.com/openpb/protogen/protoast"
	"github.com/openpb/protogen/util"
)

// MangleNames returns a copy of f with capitalisation conventions applied
// by identifier role: type-role identifiers (message and enum names,
// qualified-name components, user-written type references) have their
// first rune upper-cased, and field-role identifiers (field names and
// enumerator labels) have their first rune lower-cased. Identifiers of
// other roles are left as written. Applying the rule to references and
// declarations alike keeps namespace lookups purely textual.
//
// An empty identifier violates the parser contract and yields an internal
// error.
func MangleNames(f *protoast.File) (*protoast.File, util.Errors) {
	out := f.Copy()
	m := &mangler{}

	for _, d := range out.Decls {
		switch v := d.(type) {
		case *protoast.PackageDecl:
			for i, part := range v.Parts {
				v.Parts[i] = m.capitalize(part)
			}
		case *protoast.Message:
			m.mangleMessage(v)
		case *protoast.Enum:
			m.mangleEnum(v)
		}
	}
	return out, m.errs
}

type mangler struct {
	errs util.Errors
}

func (m *mangler) capitalize(id protoast.Ident) protoast.Ident {
	m.errs = util.AppendErr(m.errs, id.Check())
	return id.Capitalized()
}

func (m *mangler) uncapitalize(id protoast.Ident) protoast.Ident {
	m.errs = util.AppendErr(m.errs, id.Check())
	return id.Uncapitalized()
}

func (m *mangler) mangleMessage(msg *protoast.Message) {
	msg.Name = m.capitalize(msg.Name)
	for _, it := range msg.Items {
		switch v := it.(type) {
		case *protoast.Field:
			v.Name = m.uncapitalize(v.Name)
			if u, ok := v.Type.(*protoast.UnresolvedType); ok {
				v.Type = &protoast.UnresolvedType{Name: m.mangleReference(u.Name)}
			}
		case *protoast.Message:
			m.mangleMessage(v)
		case *protoast.Enum:
			m.mangleEnum(v)
		}
	}
}

func (m *mangler) mangleEnum(e *protoast.Enum) {
	e.Name = m.capitalize(e.Name)
	for i, v := range e.Values {
		e.Values[i].Name = m.uncapitalize(v.Name)
	}
}

// mangleReference applies the type-role rule to each dot-separated segment
// of a user-written reference, matching the treatment of the declarations
// the reference will be resolved against.
func (m *mangler) mangleReference(name string) string {
	segments := strings.Split(name, ".")
	for i, seg := range segments {
		if seg == "" {
			m.errs = util.AppendErr(m.errs, util.Internalf("empty segment in type reference %q", name))
			continue
		}
		segments[i] = genutil.Capitalize(seg)
	}
	return strings.Join(segments, ".")
}
