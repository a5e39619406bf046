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

	"github.com/derekparker/trie"

	"github.com/openpb/protogen/protoast"
	"github.com/openpb/protogen/util"
)

// ModuleRegistry is the collision-checked map of lowered declarations that
// the compiler hands to a backend, keyed by each declaration's
// fully-qualified dotted path. It also preserves the per-file package
// paths, which backends need for target-module naming.
type ModuleRegistry struct {
	modules      map[string]Module
	packagePaths map[string]protoast.QualifiedName
	// index mirrors the module keys for package-prefix queries.
	index *trie.Trie
}

// NewModuleRegistry returns an empty registry.
func NewModuleRegistry() *ModuleRegistry {
	return &ModuleRegistry{
		modules:      map[string]Module{},
		packagePaths: map[string]protoast.QualifiedName{},
		index:        trie.New(),
	}
}

// Insert records m under the supplied fully-qualified path. Two modules
// occupying the same slot are a collision, reported as a diagnostic; the
// first occupant is kept.
func (r *ModuleRegistry) Insert(path protoast.QualifiedName, m Module) error {
	key := path.String()
	if _, ok := r.modules[key]; ok {
		return util.Diagf(nil, "Duplicate declaration: %q", key)
	}
	r.modules[key] = m
	r.index.Add(key, nil)
	return nil
}

// Module returns the module stored under the dotted path, if any.
func (r *ModuleRegistry) Module(path string) (Module, bool) {
	m, ok := r.modules[path]
	return m, ok
}

// Len returns the number of modules in the registry.
func (r *ModuleRegistry) Len() int {
	return len(r.modules)
}

// OrderedPaths returns every module path in sorted order. Backends iterate
// the registry in this order to keep generated output deterministic.
func (r *ModuleRegistry) OrderedPaths() []string {
	paths := make([]string, 0, len(r.modules))
	for p := range r.modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Prefixed returns the paths of the modules declared under the supplied
// dotted package prefix, in sorted order. The empty prefix selects every
// module. This is the query a backend uses to emit one output unit per
// package.
func (r *ModuleRegistry) Prefixed(prefix string) []string {
	if prefix == "" {
		return r.OrderedPaths()
	}
	var out []string
	for _, key := range r.index.PrefixSearch(prefix + ".") {
		out = append(out, key)
	}
	if _, ok := r.modules[prefix]; ok {
		out = append(out, prefix)
	}
	sort.Strings(out)
	return out
}

// SetPackagePath records the package path of a compiled file.
func (r *ModuleRegistry) SetPackagePath(file string, path protoast.QualifiedName) {
	r.packagePaths[file] = path.Copy()
}

// PackagePath returns the recorded package path of a compiled file.
func (r *ModuleRegistry) PackagePath(file string) (protoast.QualifiedName, bool) {
	p, ok := r.packagePaths[file]
	return p, ok
}
