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

// Constructors shared by the stage tests. The tests build their inputs the
// way the parser would: unannotated files whose identifiers carry the role
// of the position they were declared in.

import (
	"github.com/openpb/protogen/protoast"
)

func mkFile(name string, decls ...protoast.Decl) *protoast.File {
	return &protoast.File{Name: name, Decls: decls}
}

func mkMessage(name string, items ...protoast.MessageItem) *protoast.Message {
	return &protoast.Message{Name: protoast.TypeIdent(name), Items: items}
}

func mkField(mod protoast.Modifier, typ protoast.FieldType, name string, tag int32, opts ...protoast.Option) *protoast.Field {
	return &protoast.Field{Mod: mod, Type: typ, Name: protoast.FieldIdent(name), Tag: tag, Options: opts}
}

func mkEnum(name string, values ...protoast.EnumValue) *protoast.Enum {
	return &protoast.Enum{Name: protoast.TypeIdent(name), Values: values}
}

func ev(name string, value int32) protoast.EnumValue {
	return protoast.EnumValue{Name: protoast.FieldIdent(name), Value: value}
}

func userType(name string) *protoast.UnresolvedType {
	return &protoast.UnresolvedType{Name: name}
}

func pkgDecl(parts ...string) *protoast.PackageDecl {
	return &protoast.PackageDecl{Parts: protoast.NewQualifiedName(parts...)}
}

// singleFileBundle wraps one file into a bundle with no imports.
func singleFileBundle(f *protoast.File) *protoast.Bundle {
	return &protoast.Bundle{
		Files:     []string{f.Name},
		ImportMap: map[string]string{},
		FileMap:   map[string]*protoast.File{f.Name: f},
	}
}
