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

// Package ptestutil contains helpers shared by the compiler package tests.
package ptestutil

import (
	"strings"

	"github.com/kr/pretty"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/openpb/protogen/util"
)

// Dump renders an arbitrary value for inclusion in a test failure message.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}

// DiagnosticStrings renders each error in errs, in emission order. Tests
// compare this transcript against the expected diagnostic sequence.
func DiagnosticStrings(errs util.Errors) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}

// GenerateUnifiedDiff takes two strings and generates a diff that can be
// shown to the user in a test error message.
func GenerateUnifiedDiff(want, got string) (string, error) {
	diffl := difflib.UnifiedDiff{
		A:        difflib.SplitLines(got),
		B:        difflib.SplitLines(want),
		FromFile: "got",
		ToFile:   "want",
		Context:  3,
		Eol:      "\n",
	}
	return difflib.GetUnifiedDiffString(diffl)
}

// MustDiff is GenerateUnifiedDiff with the error folded into the returned
// string, for use directly inside t.Errorf calls.
func MustDiff(want, got string) string {
	d, err := GenerateUnifiedDiff(want, got)
	if err != nil {
		return "diff error: " + err.Error()
	}
	return strings.TrimSuffix(d, "\n")
}
