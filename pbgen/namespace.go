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

// This file contains the Namespace type and the stage that constructs one
// for each file. A Namespace is the scope structure that later stages use
// to resolve type references: one flat mapping per scope, with message
// entries carrying the scope they introduce.

import (
	"sort"
	"strings"

	"github.com/openpb/protogen/protoast"
	"github.com/openpb/protogen/util"
)

// Namespace is a single-level mapping from a textual identifier to the
// entry declared under that name. Keys are unique within one Namespace.
type Namespace map[string]Entry

// Entry is a single named declaration within a Namespace.
type Entry interface {
	// EntryName returns the identifier the entry was declared with.
	EntryName() protoast.Ident
}

// MessageEntry records a message declaration together with the namespace
// of its own body. Package components are represented with the same entry
// kind so that lookup descends packages and messages uniformly.
type MessageEntry struct {
	Name  protoast.Ident
	Inner Namespace
}

// EntryName implements the Entry interface.
func (e *MessageEntry) EntryName() protoast.Ident { return e.Name }

// EnumEntry records an enum declaration.
type EnumEntry struct {
	Name protoast.Ident
}

// EntryName implements the Entry interface.
func (e *EnumEntry) EntryName() protoast.Ident { return e.Name }

// FieldEntry records a field or enumerator name within its enclosing
// scope. Enumerator names appear in the scope enclosing their enum, since
// the schema language hoists them.
type FieldEntry struct {
	Name protoast.Ident
}

// EntryName implements the Entry interface.
func (e *FieldEntry) EntryName() protoast.Ident { return e.Name }

// insert adds e to ns under its own name, returning a diagnostic if the
// name is already taken. On collision ns is left unchanged.
func (ns Namespace) insert(e Entry) error {
	name := e.EntryName().Name
	if _, ok := ns[name]; ok {
		return util.Diagf(nil, "Duplicate name: %q", name)
	}
	ns[name] = e
	return nil
}

// OrderedKeys returns the keys of ns in sorted order, for deterministic
// iteration.
func (ns Namespace) OrderedKeys() []string {
	keys := make([]string, 0, len(ns))
	for k := range ns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WrapPackage nests ns under the supplied package path: each component,
// walked right to left, becomes a synthetic message entry whose body is
// the namespace built so far. Looking up "p1.p2.x" in the result reaches
// the same entry as looking up "x" in ns.
func WrapPackage(ns Namespace, path protoast.QualifiedName) Namespace {
	for i := len(path) - 1; i >= 0; i-- {
		ns = Namespace{path[i].Name: &MessageEntry{Name: path[i], Inner: ns}}
	}
	return ns
}

// Lookup resolves the dotted name within ns. Each leading segment must
// name a message entry, whose body is descended into; the final segment
// may name any entry kind. The returned path holds the message entries
// traversed, excluding the final segment. The boolean result reports
// whether every segment was found.
func (ns Namespace) Lookup(dotted string) (protoast.QualifiedName, Entry, bool) {
	segments := strings.Split(dotted, ".")
	var path protoast.QualifiedName
	cur := ns
	for i, seg := range segments {
		e, ok := cur[seg]
		if !ok {
			return nil, nil, false
		}
		if i == len(segments)-1 {
			return path, e, true
		}
		me, ok := e.(*MessageEntry)
		if !ok {
			return nil, nil, false
		}
		path = path.Append(me.Name)
		cur = me.Inner
	}
	return nil, nil, false
}

// descend walks ns down the supplied scope path, returning the namespace
// of the scope's innermost message entry. It returns false if any
// component is missing or is not a message entry.
func (ns Namespace) descend(scope protoast.QualifiedName) (Namespace, bool) {
	cur := ns
	for _, part := range scope {
		me, ok := cur[part.Name].(*MessageEntry)
		if !ok {
			return nil, false
		}
		cur = me.Inner
	}
	return cur, true
}

// BuildNamespace constructs the namespace of f's own declarations, wraps
// it in the file's package path, and attaches it as the file's annotation.
// It also records on every message and enum the path enclosing it. Name
// collisions within a scope are reported as diagnostics; the colliding
// entry is skipped and construction continues.
func BuildNamespace(f *protoast.File) (*protoast.File, util.Errors) {
	var errs util.Errors
	out := f.Copy()

	top := Namespace{}
	for _, d := range out.Decls {
		switch v := d.(type) {
		case *protoast.Message:
			entry, merrs := buildMessageScope(v, out.PackagePath)
			errs = util.AppendErrs(errs, merrs)
			errs = util.AppendErr(errs, top.insert(entry))
		case *protoast.Enum:
			v.Scope = out.PackagePath.Copy()
			errs = util.AppendErrs(errs, insertEnum(top, v))
		}
	}

	out.Annotation = WrapPackage(top, out.PackagePath)
	util.DbgDump("namespace for "+out.Name, out.Annotation)
	return out, errs
}

// buildMessageScope builds the namespace of a single message body. scope
// is the path enclosing m; it is recorded on the message and extended with
// the message's own name for its nested declarations.
func buildMessageScope(m *protoast.Message, scope protoast.QualifiedName) (*MessageEntry, util.Errors) {
	var errs util.Errors
	m.Scope = scope.Copy()
	inner := Namespace{}
	nested := scope.Append(protoast.TypeIdent(m.Name.Name))

	for _, it := range m.Items {
		switch v := it.(type) {
		case *protoast.Field:
			errs = util.AppendErr(errs, inner.insert(&FieldEntry{Name: v.Name}))
		case *protoast.Message:
			entry, merrs := buildMessageScope(v, nested)
			errs = util.AppendErrs(errs, merrs)
			errs = util.AppendErr(errs, inner.insert(entry))
		case *protoast.Enum:
			v.Scope = nested.Copy()
			errs = util.AppendErrs(errs, insertEnum(inner, v))
		}
	}
	return &MessageEntry{Name: m.Name, Inner: inner}, errs
}

// insertEnum adds an enum entry to ns together with a field entry for each
// enumerator, since enumerator names share the scope enclosing the enum.
func insertEnum(ns Namespace, e *protoast.Enum) util.Errors {
	var errs util.Errors
	errs = util.AppendErr(errs, ns.insert(&EnumEntry{Name: e.Name}))
	for _, v := range e.Values {
		errs = util.AppendErr(errs, ns.insert(&FieldEntry{Name: v.Name}))
	}
	return errs
}
