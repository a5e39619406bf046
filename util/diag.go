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

// This file contains the diagnostic record emitted by the compiler stages.
// Diagnostics implement error so that they can be carried by the Errors
// aggregate unchanged, preserving emission order.

import "fmt"

// Severity indicates the class of a diagnostic. The compiler core only
// produces errors; the type exists so that the record handed to callers is
// self-describing.
type Severity int

const (
	// SeverityError indicates a diagnostic that prevents code generation.
	SeverityError Severity = iota
)

// String implements the stringer#String method.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// Location identifies a position in an input schema file. Line and Col are
// 1-based; a zero Line means the position within the file is unknown.
type Location struct {
	File string
	Line int
	Col  int
}

// String implements the stringer#String method.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line == 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}

// Diagnostic is a single problem report. It is the only error type that the
// compiler stages emit for malformed input.
type Diagnostic struct {
	// Severity classifies the diagnostic.
	Severity Severity
	// Msg is the human-readable description of the problem.
	Msg string
	// Loc is the source position the diagnostic refers to, if known.
	Loc *Location
}

// Error implements the error#Error method.
func (d *Diagnostic) Error() string {
	if d.Loc != nil {
		return fmt.Sprintf("%s: %s: %s", d.Loc, d.Severity, d.Msg)
	}
	return fmt.Sprintf("%s: %s", d.Severity, d.Msg)
}

// Diagf returns a new error-severity Diagnostic at loc. loc may be nil when
// no source position is available.
func Diagf(loc *Location, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{
		Severity: SeverityError,
		Msg:      fmt.Sprintf(format, args...),
		Loc:      loc,
	}
}

// internalError reports a violated precondition of the compiler core. It is
// never aggregated with user diagnostics: the pipeline surfaces it alone
// since the input that produced it is outside the parser contract.
type internalError struct {
	msg string
}

// Error implements the error#Error method.
func (e *internalError) Error() string {
	return "internal error: " + e.msg
}

// Internalf returns an error describing an internal invariant violation.
func Internalf(format string, args ...interface{}) error {
	return &internalError{msg: fmt.Sprintf(format, args...)}
}

// IsInternal reports whether err was produced by Internalf, or whether an
// Errors aggregate contains any such error.
func IsInternal(err error) bool {
	switch v := err.(type) {
	case *internalError:
		return true
	case Errors:
		for _, e := range v {
			if IsInternal(e) {
				return true
			}
		}
	}
	return false
}
