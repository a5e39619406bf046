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

// Package genutil provides naming helpers shared by the schema compiler
// stages and by code generation backends.
package genutil

import (
	"unicode"
	"unicode/utf8"
)

// Capitalize returns name with its first rune mapped to upper case. The
// remaining runes are unchanged. Target languages typically require
// PascalCase type names; this is the normalization applied to type-role
// identifiers.
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Uncapitalize returns name with its first rune mapped to lower case. The
// remaining runes are unchanged. It is the normalization applied to
// field-role identifiers.
func Uncapitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToLower(r)) + name[size:]
}
