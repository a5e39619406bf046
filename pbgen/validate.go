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
	"sort"

	"github.com/openpb/protogen/protoast"
	"github.com/openpb/protogen/util"
)

const (
	// minFieldTag and maxFieldTag bound the wire tags a field may use.
	minFieldTag = 1
	maxFieldTag = 1<<29 - 1
	// reservedTagLow and reservedTagHigh delimit the tag range reserved
	// by the schema language for its own use.
	reservedTagLow  = 19000
	reservedTagHigh = 19999
)

// ValidateLabels checks every field tag and enumerator value in f: tags
// must lie in the permitted range and outside the reserved range, tags
// must be unique within their message, and enumerator values must be
// unique within their enum. The file is not modified; all violations are
// reported, not just the first.
func ValidateLabels(f *protoast.File) util.Errors {
	var errs util.Errors
	protoast.WalkMessages(f, func(m *protoast.Message) {
		errs = util.AppendErrs(errs, validateMessageTags(m))
	})
	protoast.WalkEnums(f, func(e *protoast.Enum) {
		errs = util.AppendErrs(errs, validateEnumValues(e))
	})
	return errs
}

// validateMessageTags checks the direct fields of a single message. Fields
// of nested messages are checked when the walk reaches them.
func validateMessageTags(m *protoast.Message) util.Errors {
	var errs util.Errors
	var tags []int32
	for _, it := range m.Items {
		fld, ok := it.(*protoast.Field)
		if !ok {
			continue
		}
		switch {
		case fld.Tag < minFieldTag || fld.Tag > maxFieldTag:
			errs = util.AppendErr(errs, util.Diagf(fld.Loc, "Field tag out of range: %d on field %q in message %q", fld.Tag, fld.Name, m.Name))
		case fld.Tag >= reservedTagLow && fld.Tag <= reservedTagHigh:
			errs = util.AppendErr(errs, util.Diagf(fld.Loc, "Field tag is in reserved range: %d on field %q in message %q", fld.Tag, fld.Name, m.Name))
		}
		tags = append(tags, fld.Tag)
	}
	for _, dup := range duplicated(tags) {
		errs = util.AppendErr(errs, util.Diagf(nil, "Duplicate label number: %d in message %q", dup, m.Name))
	}
	return errs
}

func validateEnumValues(e *protoast.Enum) util.Errors {
	var errs util.Errors
	var values []int32
	for _, v := range e.Values {
		values = append(values, v.Value)
	}
	for _, dup := range duplicated(values) {
		errs = util.AppendErr(errs, util.Diagf(nil, "Duplicate enum value: %d in enum %q", dup, e.Name))
	}
	return errs
}

// duplicated returns the values that occur more than once in vs, each
// reported once, in ascending order. Duplicates are found by comparing the
// sorted values against their deduplicated form.
func duplicated(vs []int32) []int32 {
	sorted := make([]int32, len(vs))
	copy(sorted, vs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var dups []int32
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			continue
		}
		if len(dups) == 0 || dups[len(dups)-1] != sorted[i] {
			dups = append(dups, sorted[i])
		}
	}
	return dups
}
