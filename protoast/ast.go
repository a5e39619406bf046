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

// Package protoast defines the abstract syntax tree that the schema parser
// hands to the compiler core, together with the identifier and name model
// used throughout compilation. The parser owns construction of these values;
// the compiler stages refine them in place of the annotations they carry.
package protoast

import "github.com/openpb/protogen/util"

// File is a single parsed schema file.
type File struct {
	// Name is the bundle identifier of the file, typically its path.
	Name string
	// Decls holds the file's top-level declarations in source order.
	Decls []Decl
	// PackagePath is the file's package, lifted out of Decls by the
	// package-extraction stage. It is empty until that stage has run and
	// for files without a package declaration.
	PackagePath QualifiedName
	// Annotation is the per-stage payload attached to the file. The
	// namespace-construction stage stores the file's visible namespace
	// here.
	Annotation interface{}
}

// Decl is a top-level declaration within a File.
type Decl interface {
	isDecl()
}

// PackageDecl is a package statement.
type PackageDecl struct {
	// Parts are the dotted package components as written.
	Parts QualifiedName
	Loc   *util.Location
}

// ImportDecl is an import statement. Path is the import string as written;
// the parser resolves it to a bundle file identifier in Bundle.ImportMap.
type ImportDecl struct {
	Path string
	Loc  *util.Location
}

// OptionDecl is a file-level option statement.
type OptionDecl struct {
	Option Option
}

// Service is a service declaration with its RPC methods.
type Service struct {
	Name Ident
	RPCs []RPC
}

// RPC is a single method within a Service. Request and Response are type
// names as written; services are carried through compilation but not
// lowered.
type RPC struct {
	Name     Ident
	Request  string
	Response string
}

func (*PackageDecl) isDecl() {}
func (*ImportDecl) isDecl()  {}
func (*OptionDecl) isDecl()  {}
func (*Service) isDecl()     {}
func (*Message) isDecl()     {}
func (*Enum) isDecl()        {}

// Message is a message declaration, either top-level or nested.
type Message struct {
	// Name is the message's type-role identifier.
	Name Ident
	// Items are the message's contents in source order.
	Items []MessageItem
	// Scope is the path enclosing the message: the file's package
	// components followed by any outer message names. It is populated by
	// the namespace-construction stage.
	Scope QualifiedName
}

// MessageItem is a single item within a message body.
type MessageItem interface {
	isMessageItem()
}

// OptionItem is an option statement within a message body.
type OptionItem struct {
	Option Option
}

// ExtensionsItem is an extensions range placeholder within a message body.
// Ranges are carried through compilation untouched.
type ExtensionsItem struct {
	From, To int32
}

func (*Field) isMessageItem()          {}
func (*Message) isMessageItem()        {}
func (*Enum) isMessageItem()           {}
func (*OptionItem) isMessageItem()     {}
func (*ExtensionsItem) isMessageItem() {}

// Modifier is a field's presence label.
type Modifier int

const (
	// Required fields must be present on the wire.
	Required Modifier = iota
	// Optional fields may be omitted.
	Optional
	// Repeated fields hold zero or more values.
	Repeated
)

// String implements the stringer#String method.
func (m Modifier) String() string {
	switch m {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	}
	return "unknown"
}

// Field is a message field.
type Field struct {
	Mod  Modifier
	Type FieldType
	// Name is the field's field-role identifier.
	Name Ident
	// Tag is the field's wire tag.
	Tag int32
	// Options are the field's bracketed options in source order.
	Options []Option
	Loc     *util.Location
}

// FieldType is the type of a field: a builtin scalar, a user-written type
// reference, or a reference resolved to a message or enum declaration.
type FieldType interface {
	isFieldType()
}

// BuiltinType is one of the scalar types defined by the schema language.
type BuiltinType int

// The scalar types, in wire-specification order.
const (
	TypeDouble BuiltinType = iota
	TypeFloat
	TypeInt32
	TypeInt64
	TypeUInt32
	TypeUInt64
	TypeSInt32
	TypeSInt64
	TypeFixed32
	TypeFixed64
	TypeSFixed32
	TypeSFixed64
	TypeBool
	TypeString
	TypeBytes
)

// String implements the stringer#String method.
func (b BuiltinType) String() string {
	names := [...]string{
		"double", "float", "int32", "int64", "uint32", "uint64",
		"sint32", "sint64", "fixed32", "fixed64", "sfixed32", "sfixed64",
		"bool", "string", "bytes",
	}
	if int(b) < len(names) {
		return names[b]
	}
	return "unknown"
}

// UnresolvedType is a user-written type reference that has not yet been
// resolved against a namespace. Name is the possibly-dotted reference as
// written.
type UnresolvedType struct {
	Name string
}

// MessageRef is a reference resolved to a message declaration.
type MessageRef struct {
	Ref FullQualId
}

// EnumRef is a reference resolved to an enum declaration.
type EnumRef struct {
	Ref FullQualId
}

func (BuiltinType) isFieldType()     {}
func (*UnresolvedType) isFieldType() {}
func (*MessageRef) isFieldType()     {}
func (*EnumRef) isFieldType()        {}

// Enum is an enum declaration, either top-level, nested in a message, or
// inline within a message body.
type Enum struct {
	// Name is the enum's type-role identifier.
	Name Ident
	// Values are the enumerators in source order.
	Values []EnumValue
	// Scope is the path enclosing the enum, populated by the
	// namespace-construction stage.
	Scope QualifiedName
}

// EnumValue is a single enumerator.
type EnumValue struct {
	// Name is the enumerator's field-role identifier.
	Name  Ident
	Value int32
	Loc   *util.Location
}

// Option is a named option with a typed value.
type Option struct {
	Name  string
	Value OptVal
}

// OptVal is the value of an option, one of string, bool, integer or real.
type OptVal interface {
	isOptVal()
}

// OptString is a string-valued option value.
type OptString struct{ Value string }

// OptBool is a boolean-valued option value.
type OptBool struct{ Value bool }

// OptInt is an integer-valued option value.
type OptInt struct{ Value int64 }

// OptReal is a real-valued option value.
type OptReal struct{ Value float64 }

func (OptString) isOptVal() {}
func (OptBool) isOptVal()   {}
func (OptInt) isOptVal()    {}
func (OptReal) isOptVal()   {}

// Bundle is the set of schema files participating in one compilation, with
// the import graph already resolved to file identifiers by the parser.
type Bundle struct {
	// Files is the ordered list of file identifiers. All processing and
	// diagnostic emission follows this order.
	Files []string
	// ImportMap maps an import string as written to the identifier of the
	// file it resolves to.
	ImportMap map[string]string
	// FileMap maps a file identifier to its parsed file.
	FileMap map[string]*File
}
