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

package normalize

import (
	"reflect"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/amis-tools/amisgen/pkg/schema"
)

// Rewriter repairs malformed schema constructs and breaks cycles in place:
//
//   - a "type" holding a list of kinds becomes an explicit disjunction of
//     single-kind sub-schemas, because the downstream generator expects
//     disjunction members to be schema objects, not bare type tags;
//   - a "type" holding a schema object becomes a one-branch disjunction;
//   - bare type-name strings inside combinator arrays become schema objects;
//   - a reference to a cyclic definition is wrapped in a one-element "anyOf",
//     forcing a single level of indirection instead of eager inlining.
//
// The pass is idempotent: a reference that already sits as the sole content
// of a disjunction branch is left untouched, so a second run reports zero
// rewrites.
type Rewriter struct {
	cyclic sets.Set[string]
	log    logr.Logger
}

// NewRewriter creates a Rewriter that wraps references to the given cyclic
// definition names.
func NewRewriter(cyclic sets.Set[string], log logr.Logger) *Rewriter {
	return &Rewriter{cyclic: cyclic, log: log}
}

// Rewrite walks root with an explicit worklist, visiting each composite node
// at most once (tracked by identity), and returns the number of rewrites
// applied. Language-level recursion is avoided so that pathologically deep
// structures cannot exhaust the call stack. Unrecognized node shapes pass
// through unchanged.
func (r *Rewriter) Rewrite(root interface{}) int {
	fixes := 0
	var stack []interface{}
	seen := map[uintptr]struct{}{}

	// Only composite nodes go on the stack; scalars and nil roots have
	// nothing to rewrite and must not reach the identity check.
	push := func(v interface{}) {
		switch v.(type) {
		case map[string]interface{}, []interface{}:
			stack = append(stack, v)
		}
	}
	push(root)

	for len(stack) > 0 {
		obj := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := reflect.ValueOf(obj).Pointer()
		if _, done := seen[id]; done {
			continue
		}
		seen[id] = struct{}{}

		switch node := obj.(type) {
		case map[string]interface{}:
			fixes += r.rewriteNode(node)
			for key, value := range node {
				if key == "anyOf" {
					// Branches that are already a bare reference have
					// their indirection; descending would wrap them again.
					branches, ok := value.([]interface{})
					if !ok {
						push(value)
						continue
					}
					for _, branch := range branches {
						if m, ok := branch.(map[string]interface{}); ok && schema.IsPureRef(m) {
							continue
						}
						push(branch)
					}
					continue
				}
				push(value)
			}
		case []interface{}:
			for _, item := range node {
				push(item)
			}
		}
	}

	return fixes
}

// rewriteNode applies the fixes local to a single map node.
func (r *Rewriter) rewriteNode(node map[string]interface{}) int {
	fixes := 0

	// type: ["string", "number"] and type: {...} are both invalid; either
	// way the content belongs in a disjunction.
	switch t := node["type"].(type) {
	case []interface{}:
		branches := make([]interface{}, 0, len(t))
		for _, kind := range t {
			if m, ok := kind.(map[string]interface{}); ok {
				branches = append(branches, m)
				continue
			}
			branches = append(branches, map[string]interface{}{"type": kind})
		}
		delete(node, "type")
		node["anyOf"] = appendBranches(node["anyOf"], branches...)
		fixes++
	case map[string]interface{}:
		delete(node, "type")
		node["anyOf"] = appendBranches(node["anyOf"], t)
		fixes++
	}

	// Combinator arrays must hold schema objects, never bare type names.
	for _, key := range schema.CombinatorKeys {
		branches, ok := node[key].([]interface{})
		if !ok {
			continue
		}
		converted := false
		for i, branch := range branches {
			if s, ok := branch.(string); ok {
				branches[i] = map[string]interface{}{"type": s}
				converted = true
			}
		}
		if converted {
			fixes++
		}
	}

	// A raw reference to a cyclic definition would be inlined forever by the
	// generator; one level of disjunction stops the unrolling.
	if ref, ok := schema.Ref(node); ok {
		if target := schema.RefTarget(ref); r.cyclic.Has(target) {
			delete(node, "$ref")
			node["anyOf"] = appendBranches(node["anyOf"], map[string]interface{}{"$ref": ref})
			r.log.V(1).Info("wrapped cyclic reference", "target", target)
			fixes++
		}
	}

	return fixes
}

func appendBranches(existing interface{}, branches ...interface{}) []interface{} {
	list, _ := existing.([]interface{})
	return append(list, branches...)
}
