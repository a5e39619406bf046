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

package main

// This file contains the JSON wire form of a parsed bundle and its
// conversion into the compiler's AST. The wire form mirrors what the
// external parser serializes; conversion rejects unknown kinds so that a
// parser/compiler version skew fails loudly rather than silently dropping
// declarations.

import (
	"fmt"
	"strings"

	"github.com/openpb/protogen/protoast"
)

type wireBundle struct {
	Files   []string            `json:"files"`
	Imports map[string]string   `json:"imports"`
	FileMap map[string]wireFile `json:"file_map"`
}

type wireFile struct {
	Decls []wireDecl `json:"decls"`
}

type wireDecl struct {
	Kind    string       `json:"kind"`
	Name    string       `json:"name,omitempty"`
	Path    string       `json:"path,omitempty"`
	Message *wireMessage `json:"message,omitempty"`
	Enum    *wireEnum    `json:"enum,omitempty"`
	Option  *wireOption  `json:"option,omitempty"`
}

type wireMessage struct {
	Name  string     `json:"name"`
	Items []wireItem `json:"items"`
}

type wireItem struct {
	Kind    string       `json:"kind"`
	Field   *wireField   `json:"field,omitempty"`
	Message *wireMessage `json:"message,omitempty"`
	Enum    *wireEnum    `json:"enum,omitempty"`
	Option  *wireOption  `json:"option,omitempty"`
}

type wireField struct {
	Modifier string       `json:"modifier"`
	Type     string       `json:"type"`
	Name     string       `json:"name"`
	Tag      int32        `json:"tag"`
	Options  []wireOption `json:"options,omitempty"`
}

type wireEnum struct {
	Name   string          `json:"name"`
	Values []wireEnumValue `json:"values"`
}

type wireEnumValue struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

type wireOption struct {
	Name string   `json:"name"`
	Str  *string  `json:"str,omitempty"`
	Bool *bool    `json:"bool,omitempty"`
	Int  *int64   `json:"int,omitempty"`
	Real *float64 `json:"real,omitempty"`
}

// builtinTypes maps the scalar type names of the schema language to their
// AST representation. Any other type string is a user reference.
var builtinTypes = map[string]protoast.BuiltinType{
	"double": protoast.TypeDouble, "float": protoast.TypeFloat,
	"int32": protoast.TypeInt32, "int64": protoast.TypeInt64,
	"uint32": protoast.TypeUInt32, "uint64": protoast.TypeUInt64,
	"sint32": protoast.TypeSInt32, "sint64": protoast.TypeSInt64,
	"fixed32": protoast.TypeFixed32, "fixed64": protoast.TypeFixed64,
	"sfixed32": protoast.TypeSFixed32, "sfixed64": protoast.TypeSFixed64,
	"bool": protoast.TypeBool, "string": protoast.TypeString,
	"bytes": protoast.TypeBytes,
}

func (w *wireBundle) toBundle() (*protoast.Bundle, error) {
	b := &protoast.Bundle{
		Files:     w.Files,
		ImportMap: w.Imports,
		FileMap:   map[string]*protoast.File{},
	}
	if b.ImportMap == nil {
		b.ImportMap = map[string]string{}
	}
	for name, wf := range w.FileMap {
		f, err := wf.toFile(name)
		if err != nil {
			return nil, err
		}
		b.FileMap[name] = f
	}
	return b, nil
}

func (w wireFile) toFile(name string) (*protoast.File, error) {
	f := &protoast.File{Name: name}
	for _, d := range w.Decls {
		switch d.Kind {
		case "package":
			f.Decls = append(f.Decls, &protoast.PackageDecl{
				Parts: protoast.NewQualifiedName(strings.Split(d.Name, ".")...),
			})
		case "import":
			f.Decls = append(f.Decls, &protoast.ImportDecl{Path: d.Path})
		case "message":
			m, err := d.Message.toMessage()
			if err != nil {
				return nil, err
			}
			f.Decls = append(f.Decls, m)
		case "enum":
			f.Decls = append(f.Decls, d.Enum.toEnum())
		case "option":
			o, err := d.Option.toOption()
			if err != nil {
				return nil, err
			}
			f.Decls = append(f.Decls, &protoast.OptionDecl{Option: o})
		default:
			return nil, fmt.Errorf("unknown declaration kind %q in file %q", d.Kind, name)
		}
	}
	return f, nil
}

func (w *wireMessage) toMessage() (*protoast.Message, error) {
	if w == nil {
		return nil, fmt.Errorf("message declaration without a message body")
	}
	m := &protoast.Message{Name: protoast.TypeIdent(w.Name)}
	for _, it := range w.Items {
		switch it.Kind {
		case "field":
			fld, err := it.Field.toField()
			if err != nil {
				return nil, err
			}
			m.Items = append(m.Items, fld)
		case "message":
			nested, err := it.Message.toMessage()
			if err != nil {
				return nil, err
			}
			m.Items = append(m.Items, nested)
		case "enum":
			m.Items = append(m.Items, it.Enum.toEnum())
		case "option":
			o, err := it.Option.toOption()
			if err != nil {
				return nil, err
			}
			m.Items = append(m.Items, &protoast.OptionItem{Option: o})
		default:
			return nil, fmt.Errorf("unknown item kind %q in message %q", it.Kind, w.Name)
		}
	}
	return m, nil
}

func (w *wireField) toField() (*protoast.Field, error) {
	if w == nil {
		return nil, fmt.Errorf("field item without a field body")
	}
	var mod protoast.Modifier
	switch w.Modifier {
	case "required":
		mod = protoast.Required
	case "optional":
		mod = protoast.Optional
	case "repeated":
		mod = protoast.Repeated
	default:
		return nil, fmt.Errorf("unknown modifier %q on field %q", w.Modifier, w.Name)
	}

	var typ protoast.FieldType
	if bt, ok := builtinTypes[w.Type]; ok {
		typ = bt
	} else {
		typ = &protoast.UnresolvedType{Name: w.Type}
	}

	fld := &protoast.Field{
		Mod:  mod,
		Type: typ,
		Name: protoast.FieldIdent(w.Name),
		Tag:  w.Tag,
	}
	for _, o := range w.Options {
		opt, err := o.toOption()
		if err != nil {
			return nil, err
		}
		fld.Options = append(fld.Options, opt)
	}
	return fld, nil
}

func (w *wireEnum) toEnum() *protoast.Enum {
	if w == nil {
		return &protoast.Enum{}
	}
	e := &protoast.Enum{Name: protoast.TypeIdent(w.Name)}
	for _, v := range w.Values {
		e.Values = append(e.Values, protoast.EnumValue{
			Name:  protoast.FieldIdent(v.Name),
			Value: v.Value,
		})
	}
	return e
}

func (w *wireOption) toOption() (protoast.Option, error) {
	if w == nil {
		return protoast.Option{}, fmt.Errorf("option without a body")
	}
	o := protoast.Option{Name: w.Name}
	switch {
	case w.Str != nil:
		o.Value = protoast.OptString{Value: *w.Str}
	case w.Bool != nil:
		o.Value = protoast.OptBool{Value: *w.Bool}
	case w.Int != nil:
		o.Value = protoast.OptInt{Value: *w.Int}
	case w.Real != nil:
		o.Value = protoast.OptReal{Value: *w.Real}
	default:
		return protoast.Option{}, fmt.Errorf("option %q has no value", w.Name)
	}
	return o, nil
}
