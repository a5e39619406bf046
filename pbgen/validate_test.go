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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/openpb/protogen/internal/ptestutil"
	"github.com/openpb/protogen/protoast"
)

func TestValidateLabels(t *testing.T) {
	tests := []struct {
		name   string
		inFile *protoast.File
		want   []string
	}{{
		name: "valid message",
		inFile: mkFile("ok.proto",
			mkMessage("Point",
				mkField(protoast.Required, protoast.TypeInt32, "x", 1),
				mkField(protoast.Required, protoast.TypeInt32, "y", 2),
			),
		),
	}, {
		name: "duplicate tag",
		inFile: mkFile("dup.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt32, "a", 1),
				mkField(protoast.Required, protoast.TypeInt32, "b", 1),
			),
		),
		want: []string{`error: Duplicate label number: 1 in message "M"`},
	}, {
		name: "reserved tag",
		inFile: mkFile("reserved.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt32, "x", 19500),
			),
		),
		want: []string{`error: Field tag is in reserved range: 19500 on field "x" in message "M"`},
	}, {
		name: "tag below range",
		inFile: mkFile("low.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt32, "x", 0),
			),
		),
		want: []string{`error: Field tag out of range: 0 on field "x" in message "M"`},
	}, {
		name: "tag above range",
		inFile: mkFile("high.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt32, "x", 1<<29),
			),
		),
		want: []string{`error: Field tag out of range: 536870912 on field "x" in message "M"`},
	}, {
		name: "reserved range boundaries",
		inFile: mkFile("bounds.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt32, "a", 18999),
				mkField(protoast.Required, protoast.TypeInt32, "b", 19000),
				mkField(protoast.Required, protoast.TypeInt32, "c", 19999),
				mkField(protoast.Required, protoast.TypeInt32, "d", 20000),
			),
		),
		want: []string{
			`error: Field tag is in reserved range: 19000 on field "b" in message "M"`,
			`error: Field tag is in reserved range: 19999 on field "c" in message "M"`,
		},
	}, {
		name: "nested message checked",
		inFile: mkFile("nested.proto",
			mkMessage("Outer",
				mkField(protoast.Required, protoast.TypeInt32, "a", 1),
				mkMessage("Inner",
					mkField(protoast.Required, protoast.TypeInt32, "b", 2),
					mkField(protoast.Required, protoast.TypeInt32, "c", 2),
				),
			),
		),
		want: []string{`error: Duplicate label number: 2 in message "Inner"`},
	}, {
		name: "duplicate enum value",
		inFile: mkFile("enum.proto",
			mkEnum("Color", ev("red", 0), ev("green", 0), ev("blue", 1)),
		),
		want: []string{`error: Duplicate enum value: 0 in enum "Color"`},
	}, {
		name: "inline enum checked",
		inFile: mkFile("inline.proto",
			mkMessage("M",
				mkEnum("Mode", ev("on", 1), ev("off", 1)),
			),
		),
		want: []string{`error: Duplicate enum value: 1 in enum "Mode"`},
	}, {
		name: "all violations reported",
		inFile: mkFile("many.proto",
			mkMessage("M",
				mkField(protoast.Required, protoast.TypeInt32, "a", 1),
				mkField(protoast.Required, protoast.TypeInt32, "b", 1),
				mkField(protoast.Required, protoast.TypeInt32, "c", 19001),
			),
			mkEnum("E", ev("x", 5), ev("y", 5)),
		),
		want: []string{
			`error: Field tag is in reserved range: 19001 on field "c" in message "M"`,
			`error: Duplicate label number: 1 in message "M"`,
			`error: Duplicate enum value: 5 in enum "E"`,
		},
	}}

	for _, tt := range tests {
		got := ptestutil.DiagnosticStrings(ValidateLabels(tt.inFile))
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: ValidateLabels: (-want, +got):\n%s", tt.name, diff)
		}
	}
}

// TestValidateLabelsPurity checks that validation does not modify its
// input.
func TestValidateLabelsPurity(t *testing.T) {
	in := mkFile("pure.proto",
		mkMessage("M",
			mkField(protoast.Required, protoast.TypeInt32, "b", 2),
			mkField(protoast.Required, protoast.TypeInt32, "a", 2),
		),
	)
	want := in.Copy()
	ValidateLabels(in)
	if diff := cmp.Diff(ptestutil.Dump(want), ptestutil.Dump(in)); diff != "" {
		t.Errorf("ValidateLabels modified its input: (-want, +got):\n%s", diff)
	}
}
