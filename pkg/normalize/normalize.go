// Copyright 2026 The Amisgen Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package normalize turns a schema document with reference cycles, unbounded
// nesting and malformed constructs into an equivalent acyclic, depth-bounded
// document that a schema-to-data-model generator can consume without
// recursion or stack-depth errors.
package normalize

import (
	"sort"

	"github.com/go-logr/logr"

	"github.com/amis-tools/amisgen/pkg/schema"
)

// Options configure a normalization run. All knobs are explicit values; no
// behavior is read from package-level state.
type Options struct {
	SimplifyOptions
	Logger logr.Logger
}

// DefaultOptions returns the options used by the pipeline.
func DefaultOptions() Options {
	return Options{
		SimplifyOptions: DefaultSimplifyOptions(),
		Logger:          logr.Discard(),
	}
}

// Report summarizes what a normalization run did.
type Report struct {
	// Definitions is the number of definitions processed.
	Definitions int
	// Cyclic is the number of definitions participating in or reaching a
	// reference cycle.
	Cyclic int
	// Rewrites is the number of structural fixes applied by the rewrite
	// pass.
	Rewrites int
}

// Normalize rewrites and simplifies every definition of doc and returns a
// new document guaranteed to be acyclic and depth-bounded. The input
// document's definitions are repaired in place by the rewrite pass; the
// simplified output is a fresh tree.
func Normalize(doc schema.Document, opts Options) (schema.Document, Report, error) {
	log := opts.Logger
	definitions := doc.Definitions()
	if definitions == nil {
		return nil, Report{}, schema.ErrNoDefinitions
	}

	cyclic := CyclicDefinitions(definitions)
	log.Info("computed cyclic definitions", "definitions", len(definitions), "cyclic", len(cyclic))

	// Only the definitions subtree is rewritten; a root-level "$ref" into a
	// cyclic definition must stay a plain pointer.
	rewriter := NewRewriter(cyclic, log)
	rewrites := rewriter.Rewrite(definitions)
	log.Info("rewrite pass complete", "fixes", rewrites)

	simplifier := NewSimplifier(definitions, opts.SimplifyOptions, log)

	// Definitions are processed in name order so output is deterministic.
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	simplified := make(map[string]interface{}, len(definitions))
	for _, name := range names {
		simplified[name] = simplifier.SimplifyDefinition(name, definitions[name])
	}

	out := schema.Document{
		"$schema":     schema.Draft07,
		"definitions": simplified,
	}
	for _, key := range []string{"$ref", "title", "description", "type"} {
		if v, ok := doc[key]; ok {
			out[key] = v
		}
	}

	report := Report{
		Definitions: len(definitions),
		Cyclic:      len(cyclic),
		Rewrites:    rewrites,
	}
	return out, report, nil
}
