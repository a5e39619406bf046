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

// This file contains the structural traversal helpers used by the compiler
// stages. The traversals visit every node of the requested kind anywhere in
// the tree, in document order, with enclosing messages visited before their
// nested declarations.

// WalkMessages calls fn for every message in f in document order. Nested
// messages are visited after their parent.
func WalkMessages(f *File, fn func(*Message)) {
	for _, d := range f.Decls {
		if m, ok := d.(*Message); ok {
			walkMessage(m, fn)
		}
	}
}

func walkMessage(m *Message, fn func(*Message)) {
	fn(m)
	for _, it := range m.Items {
		if nested, ok := it.(*Message); ok {
			walkMessage(nested, fn)
		}
	}
}

// WalkEnums calls fn for every enum in f in document order, whether
// declared at the top level or within a message.
func WalkEnums(f *File, fn func(*Enum)) {
	for _, d := range f.Decls {
		switch v := d.(type) {
		case *Enum:
			fn(v)
		case *Message:
			walkMessageEnums(v, fn)
		}
	}
}

func walkMessageEnums(m *Message, fn func(*Enum)) {
	for _, it := range m.Items {
		switch v := it.(type) {
		case *Enum:
			fn(v)
		case *Message:
			walkMessageEnums(v, fn)
		}
	}
}

// WalkFields calls fn for every field in f in document order, including
// fields of nested messages.
func WalkFields(f *File, fn func(*Message, *Field)) {
	WalkMessages(f, func(m *Message) {
		for _, it := range m.Items {
			if fld, ok := it.(*Field); ok {
				fn(m, fld)
			}
		}
	})
}

// Copy returns a deep copy of f's declarations and package path. The
// Annotation is not copied: the result shares it with f. The compiler
// stages consume their input and produce fresh values; Copy is how a
// transforming stage detaches its output from the stage before it.
func (f *File) Copy() *File {
	if f == nil {
		return nil
	}
	out := &File{
		Name:        f.Name,
		PackagePath: f.PackagePath.Copy(),
		Annotation:  f.Annotation,
	}
	for _, d := range f.Decls {
		out.Decls = append(out.Decls, copyDecl(d))
	}
	return out
}

func copyDecl(d Decl) Decl {
	switch v := d.(type) {
	case *PackageDecl:
		return &PackageDecl{Parts: v.Parts.Copy(), Loc: v.Loc}
	case *ImportDecl:
		return &ImportDecl{Path: v.Path, Loc: v.Loc}
	case *OptionDecl:
		return &OptionDecl{Option: v.Option}
	case *Service:
		out := &Service{Name: v.Name}
		out.RPCs = append(out.RPCs, v.RPCs...)
		return out
	case *Message:
		return v.Copy()
	case *Enum:
		return v.Copy()
	}
	return d
}

// Copy returns a deep copy of m.
func (m *Message) Copy() *Message {
	if m == nil {
		return nil
	}
	out := &Message{Name: m.Name, Scope: m.Scope.Copy()}
	for _, it := range m.Items {
		switch v := it.(type) {
		case *Field:
			out.Items = append(out.Items, v.Copy())
		case *Message:
			out.Items = append(out.Items, v.Copy())
		case *Enum:
			out.Items = append(out.Items, v.Copy())
		case *OptionItem:
			out.Items = append(out.Items, &OptionItem{Option: v.Option})
		case *ExtensionsItem:
			out.Items = append(out.Items, &ExtensionsItem{From: v.From, To: v.To})
		}
	}
	return out
}

// Copy returns a deep copy of fld.
func (fld *Field) Copy() *Field {
	if fld == nil {
		return nil
	}
	out := &Field{
		Mod:  fld.Mod,
		Type: fld.Type,
		Name: fld.Name,
		Tag:  fld.Tag,
		Loc:  fld.Loc,
	}
	out.Options = append(out.Options, fld.Options...)
	return out
}

// Copy returns a deep copy of e.
func (e *Enum) Copy() *Enum {
	if e == nil {
		return nil
	}
	out := &Enum{Name: e.Name, Scope: e.Scope.Copy()}
	out.Values = append(out.Values, e.Values...)
	return out
}
