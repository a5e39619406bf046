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

// Option names with meaning at lowering time.
const (
	packedOptionName  = "packed"
	defaultOptionName = "default"
)

// Lower folds the resolved files into a ModuleRegistry: one module per
// declared message or enum, keyed by its fully-qualified path. Path
// collisions across the whole bundle are aggregated as diagnostics.
func Lower(files []*protoast.File) (*ModuleRegistry, util.Errors) {
	var errs util.Errors
	r := NewModuleRegistry()

	for _, f := range files {
		r.SetPackagePath(f.Name, f.PackagePath)
		protoast.WalkMessages(f, func(m *protoast.Message) {
			mod, merrs := lowerMessage(m)
			errs = util.AppendErrs(errs, merrs)
			errs = util.AppendErr(errs, r.Insert(m.Scope.Append(m.Name), mod))
		})
		protoast.WalkEnums(f, func(e *protoast.Enum) {
			errs = util.AppendErr(errs, r.Insert(e.Scope.Append(e.Name), lowerEnum(e)))
		})
	}
	return r, errs
}

func lowerMessage(m *protoast.Message) (*IrMessage, util.Errors) {
	var errs util.Errors
	out := &IrMessage{Name: m.Name}
	for _, it := range m.Items {
		fld, ok := it.(*protoast.Field)
		if !ok {
			continue
		}
		irf, err := lowerField(m, fld)
		if err != nil {
			errs = util.AppendErr(errs, err)
			continue
		}
		out.Fields = append(out.Fields, irf)
	}
	return out, errs
}

func lowerEnum(e *protoast.Enum) *IrEnum {
	out := &IrEnum{Name: e.Name}
	for _, v := range e.Values {
		out.Values = append(out.Values, IrEnumValue{Name: v.Name, Value: v.Value})
	}
	return out
}

func lowerField(m *protoast.Message, fld *protoast.Field) (IrField, error) {
	packed, err := packedOption(fld)
	if err != nil {
		return IrField{}, err
	}

	var shape Shape
	switch fld.Mod {
	case protoast.Required:
		shape = ShapeRequired{}
	case protoast.Optional:
		shape = ShapeOptional{}
	case protoast.Repeated:
		shape = ShapeRepeated{Packed: packed}
	}

	var inner InnerType
	switch t := fld.Type.(type) {
	case protoast.BuiltinType:
		inner = ScalarType{Kind: t}
	case *protoast.MessageRef:
		inner = MessageType{Ref: t.Ref}
	case *protoast.EnumRef:
		inner = EnumType{Ref: t.Ref}
	case *protoast.UnresolvedType:
		return IrField{}, util.Internalf("unresolved type reference %q on field %q in message %q", t.Name, fld.Name, m.Name)
	}

	return IrField{
		Name:    fld.Name,
		Tag:     fld.Tag,
		Shape:   shape,
		Inner:   inner,
		Default: defaultOption(fld),
	}, nil
}

// packedOption reads the boolean "packed" option from the field's option
// list. A "packed" option with a non-boolean value is outside the parser
// contract.
func packedOption(fld *protoast.Field) (bool, error) {
	for _, o := range fld.Options {
		if o.Name != packedOptionName {
			continue
		}
		b, ok := o.Value.(protoast.OptBool)
		if !ok {
			return false, util.Internalf("non-boolean %q option on field %q", packedOptionName, fld.Name)
		}
		return b.Value, nil
	}
	return false, nil
}

// defaultOption returns the field's default-value literal, if declared.
func defaultOption(fld *protoast.Field) protoast.OptVal {
	for _, o := range fld.Options {
		if o.Name == defaultOptionName {
			return o.Value
		}
	}
	return nil
}
