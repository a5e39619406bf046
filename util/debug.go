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

package util

import (
	"fmt"

	"github.com/kylelemons/godebug/pretty"
)

var (
	// debugLibrary controls the debugging output from the compiler
	// stages. Since this setting causes global variables to be
	// manipulated controlling the output of the library, it MUST NOT be
	// used in a setting whereby thread-safety is required.
	debugLibrary = false
	// maxCharsPerLine is the maximum number of characters per line from
	// DbgPrint. Additional characters are truncated.
	maxCharsPerLine = 1000
)

// DbgPrint prints v if the package global variable debugLibrary is set.
// v has the same format as Printf. A trailing newline is added to the output.
func DbgPrint(v ...interface{}) {
	if !debugLibrary {
		return
	}
	out := fmt.Sprintf(v[0].(string), v[1:]...)
	if len(out) > maxCharsPerLine {
		out = out[:maxCharsPerLine]
	}
	fmt.Println(out)
}

// DbgDump DbgPrints a label followed by the pretty-rendered value. It is
// used to inspect intermediate stage outputs such as a file's constructed
// namespace.
func DbgDump(label string, v interface{}) {
	DbgPrint("%s: %s", label, pretty.Sprint(v))
}

// DbgErr DbgPrints err and returns it.
func DbgErr(err error) error {
	DbgPrint("ERR: " + err.Error())
	return err
}
