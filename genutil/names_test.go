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

package genutil

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "lower-case first rune",
		in:   "message",
		want: "Message",
	}, {
		name: "already capitalized",
		in:   "Message",
		want: "Message",
	}, {
		name: "single rune",
		in:   "m",
		want: "M",
	}, {
		name: "non-letter first rune",
		in:   "_hidden",
		want: "_hidden",
	}, {
		name: "non-ascii first rune",
		in:   "ünit",
		want: "Ünit",
	}, {
		name: "empty string",
		in:   "",
		want: "",
	}}

	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("%s: Capitalize(%q): got %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestUncapitalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "upper-case first rune",
		in:   "FieldName",
		want: "fieldName",
	}, {
		name: "already lower case",
		in:   "fieldName",
		want: "fieldName",
	}, {
		name: "only first rune changes",
		in:   "XYZ",
		want: "xYZ",
	}, {
		name: "empty string",
		in:   "",
		want: "",
	}}

	for _, tt := range tests {
		if got := Uncapitalize(tt.in); got != tt.want {
			t.Errorf("%s: Uncapitalize(%q): got %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}
