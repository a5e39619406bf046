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
	"golang.org/x/exp/slices"

	"github.com/openpb/protogen/protoast"
)

// SortFields returns a copy of f in which every message's items are
// ordered by ascending field tag. Items that are not fields rank with a
// synthetic tag of -1, placing them ahead of all fields; the sort is
// stable so their relative order is preserved. Canonical ordering makes
// the lowered output deterministic regardless of declaration order.
func SortFields(f *protoast.File) *protoast.File {
	out := f.Copy()
	protoast.WalkMessages(out, func(m *protoast.Message) {
		slices.SortStableFunc(m.Items, func(a, b protoast.MessageItem) int {
			return int(itemTag(a)) - int(itemTag(b))
		})
	})
	return out
}

// itemTag ranks a message item for canonical ordering.
func itemTag(it protoast.MessageItem) int32 {
	if fld, ok := it.(*protoast.Field); ok {
		return fld.Tag
	}
	return -1
}
