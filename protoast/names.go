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

package protoast

import (
	"strings"

	"github.com/openpb/protogen/genutil"
	"github.com/openpb/protogen/util"
)

// Role describes the syntactic position an identifier was declared in. The
// role travels with the identifier so that, for example, a field name cannot
// silently be used where a type name is required.
type Role int

const (
	// TypeRole identifies messages, enums and the components of qualified
	// names.
	TypeRole Role = iota
	// FieldRole identifies message fields and enum value labels.
	FieldRole
	// PackageRole identifies package declarations as written in source.
	PackageRole
	// MethodRole identifies RPC methods within a service.
	MethodRole
	// ServiceRole identifies service declarations.
	ServiceRole
)

// String implements the stringer#String method.
func (r Role) String() string {
	switch r {
	case TypeRole:
		return "type"
	case FieldRole:
		return "field"
	case PackageRole:
		return "package"
	case MethodRole:
		return "method"
	case ServiceRole:
		return "service"
	}
	return "unknown"
}

// Ident is an identifier tagged with the role it was declared in. The
// parser guarantees that Name is non-empty; Check enforces this at the
// compiler boundary.
type Ident struct {
	Name string
	Role Role
}

// TypeIdent returns a type-role identifier with the supplied name.
func TypeIdent(name string) Ident { return Ident{Name: name, Role: TypeRole} }

// FieldIdent returns a field-role identifier with the supplied name.
func FieldIdent(name string) Ident { return Ident{Name: name, Role: FieldRole} }

// PackageIdent returns a package-role identifier with the supplied name.
func PackageIdent(name string) Ident { return Ident{Name: name, Role: PackageRole} }

// MethodIdent returns a method-role identifier with the supplied name.
func MethodIdent(name string) Ident { return Ident{Name: name, Role: MethodRole} }

// ServiceIdent returns a service-role identifier with the supplied name.
func ServiceIdent(name string) Ident { return Ident{Name: name, Role: ServiceRole} }

// String implements the stringer#String method.
func (i Ident) String() string { return i.Name }

// Check returns an internal error if the identifier violates the parser
// contract of being non-empty.
func (i Ident) Check() error {
	if i.Name == "" {
		return util.Internalf("empty %s identifier", i.Role)
	}
	return nil
}

// Capitalized returns a copy of the identifier with its first rune mapped
// to upper case, preserving the role.
func (i Ident) Capitalized() Ident {
	return Ident{Name: genutil.Capitalize(i.Name), Role: i.Role}
}

// Uncapitalized returns a copy of the identifier with its first rune mapped
// to lower case, preserving the role.
func (i Ident) Uncapitalized() Ident {
	return Ident{Name: genutil.Uncapitalize(i.Name), Role: i.Role}
}

// QualifiedName is an ordered sequence of type-role identifiers naming a
// scope. The empty QualifiedName is the root package.
type QualifiedName []Ident

// NewQualifiedName returns a QualifiedName built from the supplied dotted
// path components.
func NewQualifiedName(parts ...string) QualifiedName {
	var q QualifiedName
	for _, p := range parts {
		q = append(q, TypeIdent(p))
	}
	return q
}

// String implements the stringer#String method, returning the dot-joined
// path.
func (q QualifiedName) String() string {
	parts := make([]string, 0, len(q))
	for _, i := range q {
		parts = append(parts, i.Name)
	}
	return strings.Join(parts, ".")
}

// Append returns a new QualifiedName with id appended. The receiver is not
// modified.
func (q QualifiedName) Append(id Ident) QualifiedName {
	out := make(QualifiedName, 0, len(q)+1)
	out = append(out, q...)
	return append(out, id)
}

// Equal reports whether q and o name the same scope.
func (q QualifiedName) Equal(o QualifiedName) bool {
	if len(q) != len(o) {
		return false
	}
	for i := range q {
		if q[i].Name != o[i].Name {
			return false
		}
	}
	return true
}

// Copy returns a copy of q that shares no storage with the receiver.
func (q QualifiedName) Copy() QualifiedName {
	if q == nil {
		return nil
	}
	out := make(QualifiedName, len(q))
	copy(out, q)
	return out
}

// Prefixes returns the candidate scopes for name resolution relative to q,
// innermost first: q itself, each shorter prefix of q, and finally the root
// package (the empty QualifiedName).
func (q QualifiedName) Prefixes() []QualifiedName {
	out := make([]QualifiedName, 0, len(q)+1)
	for i := len(q); i >= 0; i-- {
		out = append(out, q[:i])
	}
	return out
}

// FullQualId couples a scope path with a single leaf type name, identifying
// a declaration unambiguously across an entire compilation.
type FullQualId struct {
	// Path is the scope the declaration lives in: its package components
	// followed by any enclosing message names.
	Path QualifiedName
	// Leaf is the declaration's own name.
	Leaf Ident
}

// String implements the stringer#String method.
func (f FullQualId) String() string {
	if len(f.Path) == 0 {
		return f.Leaf.Name
	}
	return f.Path.String() + "." + f.Leaf.Name
}
