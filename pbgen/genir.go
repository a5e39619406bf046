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

// Package pbgen transforms a bundle of parsed schema files into the
// intermediate representation consumed by code generation backends. The
// transformation is a fixed sequence of stages: label validation, field
// ordering, name mangling, package extraction, namespace construction,
// import resolution, type-name resolution and lowering. Each stage
// aggregates every problem it finds; the pipeline halts at the first stage
// boundary with outstanding diagnostics.
package pbgen

import (
	log "github.com/golang/glog"

	"github.com/openpb/protogen/protoast"
	"github.com/openpb/protogen/util"
)

// IROptions contains options used to customize IR generation.
type IROptions struct {
	// SkipValidation omits the label-validation stage. It is intended
	// for bundles that a caller has already validated, for example when
	// recompiling a bundle whose files were compiled individually before.
	SkipValidation bool
}

// GenerateIR compiles the bundle into a ModuleRegistry. Processing order
// follows bundle.Files, and declaration order within each file follows the
// parsed source, so identical input produces identical modules and an
// identical diagnostic sequence.
//
// The returned errors are the diagnostics of the first stage that failed.
// An internal error reports input outside the parser contract and is
// surfaced alone.
func GenerateIR(bundle *protoast.Bundle, opts IROptions) (*ModuleRegistry, util.Errors) {
	if bundle == nil {
		return nil, util.NewErrs(util.Internalf("nil bundle"))
	}

	work := map[string]*protoast.File{}
	for _, id := range bundle.Files {
		f, ok := bundle.FileMap[id]
		if !ok {
			return nil, util.NewErrs(util.Internalf("bundle file map is missing file %q", id))
		}
		work[id] = f
	}

	if !opts.SkipValidation {
		log.V(1).Info("validating field tags and enum values")
		var errs util.Errors
		for _, id := range bundle.Files {
			errs = util.AppendErrs(errs, ValidateLabels(work[id]))
		}
		if err := materialize(errs); err != nil {
			return nil, err
		}
	}

	log.V(1).Info("canonicalizing field order")
	for _, id := range bundle.Files {
		work[id] = SortFields(work[id])
	}

	log.V(1).Info("applying identifier capitalisation")
	if err := transformFiles(bundle.Files, work, MangleNames); err != nil {
		return nil, err
	}

	log.V(1).Info("extracting package declarations")
	if err := transformFiles(bundle.Files, work, ExtractPackage); err != nil {
		return nil, err
	}

	log.V(1).Info("building per-file namespaces")
	if err := transformFiles(bundle.Files, work, BuildNamespace); err != nil {
		return nil, err
	}

	log.V(1).Info("merging imported namespaces")
	files, errs := ResolveImports(&protoast.Bundle{
		Files:     bundle.Files,
		ImportMap: bundle.ImportMap,
		FileMap:   work,
	})
	if err := materialize(errs); err != nil {
		return nil, err
	}

	log.V(1).Info("resolving type references")
	resolved := make([]*protoast.File, 0, len(files))
	var rerrs util.Errors
	for _, f := range files {
		rf, ferrs := ResolveTypeNames(f)
		rerrs = util.AppendErrs(rerrs, ferrs)
		if rf != nil {
			resolved = append(resolved, rf)
		}
	}
	if err := materialize(rerrs); err != nil {
		return nil, err
	}

	log.V(1).Info("lowering declarations")
	registry, lerrs := Lower(resolved)
	if err := materialize(lerrs); err != nil {
		return nil, err
	}

	log.V(1).Infof("lowered %d modules", registry.Len())
	return registry, nil
}

// transformFiles applies a per-file stage to every file in order,
// aggregating diagnostics across the whole bundle before deciding whether
// to halt. A file that the stage rejects outright keeps its previous value
// so that later files still get their diagnostics reported.
func transformFiles(order []string, work map[string]*protoast.File, stage func(*protoast.File) (*protoast.File, util.Errors)) util.Errors {
	var errs util.Errors
	for _, id := range order {
		out, ferrs := stage(work[id])
		errs = util.AppendErrs(errs, ferrs)
		if out != nil {
			work[id] = out
		}
	}
	return materialize(errs)
}

// materialize closes a stage region: it returns nil when the region saw no
// diagnostics, the single offending internal error when the parser
// contract was violated, and the aggregated diagnostics otherwise.
func materialize(errs util.Errors) util.Errors {
	if len(errs) == 0 {
		return nil
	}
	if util.IsInternal(errs) {
		for _, e := range errs {
			if util.IsInternal(e) {
				return util.NewErrs(e)
			}
		}
	}
	return errs
}
