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

// This file describes the intermediate representation that is produced by
// the pbgen compiler core. The IR is target-language neutral: a backend
// walks the modules of a ModuleRegistry and emits source text for its
// target, using only the information recorded here plus the per-file
// package paths preserved alongside the registry.

import (
	"fmt"
	"strings"

	"github.com/openpb/protogen/protoast"
)

// Module is a single lowered declaration: a message or an enum, keyed in
// the ModuleRegistry by its fully-qualified path.
type Module interface {
	// ModuleName returns the declaration's own type name.
	ModuleName() protoast.Ident
}

// IrMessage is a lowered message declaration.
type IrMessage struct {
	// Name is the message's type name.
	Name protoast.Ident
	// Fields holds the message's lowered fields in canonical (ascending
	// tag) order.
	Fields []IrField
}

// ModuleName implements the Module interface.
func (m *IrMessage) ModuleName() protoast.Ident { return m.Name }

// IrEnum is a lowered enum declaration.
type IrEnum struct {
	// Name is the enum's type name.
	Name protoast.Ident
	// Values holds the enumerators in declaration order.
	Values []IrEnumValue
}

// ModuleName implements the Module interface.
func (e *IrEnum) ModuleName() protoast.Ident { return e.Name }

// IrEnumValue is a single lowered enumerator.
type IrEnumValue struct {
	Name  protoast.Ident
	Value int32
}

// Shape is the outer form of a lowered field, determined by the field's
// presence label.
type Shape interface {
	isShape()
}

// ShapeRequired marks a field that must be present.
type ShapeRequired struct{}

// ShapeOptional marks a field that may be omitted.
type ShapeOptional struct{}

// ShapeRepeated marks a field holding zero or more values. Packed records
// whether repeated scalar values use the packed wire encoding.
type ShapeRepeated struct {
	Packed bool
}

func (ShapeRequired) isShape() {}
func (ShapeOptional) isShape() {}
func (ShapeRepeated) isShape() {}

// InnerType is the element type of a lowered field.
type InnerType interface {
	isInnerType()
}

// ScalarType is a builtin scalar element type.
type ScalarType struct {
	Kind protoast.BuiltinType
}

// MessageType is a reference to a lowered message.
type MessageType struct {
	Ref protoast.FullQualId
}

// EnumType is a reference to a lowered enum.
type EnumType struct {
	Ref protoast.FullQualId
}

func (ScalarType) isInnerType()  {}
func (MessageType) isInnerType() {}
func (EnumType) isInnerType()    {}

// IrField is a single lowered message field.
type IrField struct {
	// Name is the field's name after capitalisation normalisation.
	Name protoast.Ident
	// Tag is the field's wire tag.
	Tag int32
	// Shape is the field's outer form.
	Shape Shape
	// Inner is the field's element type.
	Inner InnerType
	// Default is the field's default-value literal, if one was declared.
	Default protoast.OptVal
}

// String implements the stringer#String method. The rendering is stable
// and is what the generator binary prints for each field.
func (f IrField) String() string {
	var shape string
	switch s := f.Shape.(type) {
	case ShapeRequired:
		shape = "required"
	case ShapeOptional:
		shape = "optional"
	case ShapeRepeated:
		shape = "repeated"
		if s.Packed {
			shape = "repeated packed"
		}
	}
	var inner string
	switch t := f.Inner.(type) {
	case ScalarType:
		inner = t.Kind.String()
	case MessageType:
		inner = t.Ref.String()
	case EnumType:
		inner = t.Ref.String()
	}
	return fmt.Sprintf("%s %s %s = %d", shape, inner, f.Name, f.Tag)
}

// String implements the stringer#String method.
func (m *IrMessage) String() string {
	fields := make([]string, 0, len(m.Fields))
	for _, f := range m.Fields {
		fields = append(fields, f.String())
	}
	return fmt.Sprintf("message %s { %s }", m.Name, strings.Join(fields, "; "))
}

// String implements the stringer#String method.
func (e *IrEnum) String() string {
	values := make([]string, 0, len(e.Values))
	for _, v := range e.Values {
		values = append(values, fmt.Sprintf("%s = %d", v.Name, v.Value))
	}
	return fmt.Sprintf("enum %s { %s }", e.Name, strings.Join(values, "; "))
}
