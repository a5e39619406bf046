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

import "strings"

// Errors is the aggregate a compiler stage reports its diagnostics in. A
// stage appends one error per problem it finds and keeps going, so a
// single malformed declaration does not hide the rest of the file; the
// pipeline then inspects the aggregate at each stage boundary and halts
// compilation only between stages. A nil Errors means the stage found
// nothing wrong. Order is significant: it is the emission order promised
// to callers, and determinism tests compare it across runs.
type Errors []error

// Error implements error, rendering the diagnostics as one
// comma-separated transcript in emission order.
func (e Errors) Error() string {
	return ToString(e)
}

// String implements the stringer#String method.
func (e Errors) String() string {
	return e.Error()
}

// NewErrs wraps a single error into an aggregate, so that a stage can
// surface one fatal problem through the same channel as accumulated
// diagnostics. A nil err yields a nil aggregate.
func NewErrs(err error) Errors {
	if err == nil {
		return nil
	}
	return Errors{err}
}

// AppendErr records one more diagnostic in the aggregate. Appending nil is
// a no-op, which lets stages write unconditional
// errs = AppendErr(errs, fallibleOp()) sequences.
func AppendErr(errors []error, err error) Errors {
	if err == nil {
		return errors
	}
	return append(errors, err)
}

// AppendErrs forwards the diagnostics of an inner region into the
// enclosing one, preserving their relative order. Nil members are
// dropped.
func AppendErrs(errors []error, newErrs []error) Errors {
	for _, e := range newErrs {
		errors = AppendErr(errors, e)
	}
	return errors
}

// ToString renders errors as a single comma-separated string in emission
// order. Any nil errors in the slice are skipped.
func ToString(errors []error) string {
	parts := make([]string, 0, len(errors))
	for _, e := range errors {
		if e == nil {
			continue
		}
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, ", ")
}

// UniqueErrors returns the unique errors in errs, preserving the order of
// first occurrence. Comparison is by the rendered error string. It is a
// presentation helper: repeated identical diagnostics add nothing when a
// driver reports a failed compilation.
func UniqueErrors(errs Errors) Errors {
	var out Errors
	seen := map[string]bool{}
	for _, e := range errs {
		if e == nil || seen[e.Error()] {
			continue
		}
		seen[e.Error()] = true
		out = append(out, e)
	}
	return out
}
