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
	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/amis-tools/amisgen/pkg/schema"
)

// SimplifyOptions bound the inlining performed by the Simplifier.
type SimplifyOptions struct {
	// MaxDepth is the deepest level references are inlined to; past it a
	// node is truncated to the open-object placeholder.
	MaxDepth int
	// MaxObjectBranches caps object-shaped branches kept per combinator.
	MaxObjectBranches int
	// MaxArrayBranches caps array-shaped branches kept per combinator.
	MaxArrayBranches int
	// MaxOtherBranches caps remaining branch shapes kept per combinator.
	MaxOtherBranches int
	// MaxBranches caps the total branch count per combinator. Primitive
	// branches are never dropped below this cap, so the cap preserves a
	// diversity of representable shapes instead of the first N in input
	// order.
	MaxBranches int
}

// DefaultSimplifyOptions returns the bounds used by the toolchain pipeline.
func DefaultSimplifyOptions() SimplifyOptions {
	return SimplifyOptions{
		MaxDepth:          5,
		MaxObjectBranches: 5,
		MaxArrayBranches:  3,
		MaxOtherBranches:  3,
		MaxBranches:       10,
	}
}

// Simplifier resolves references by inlining definition bodies up to a
// configured depth. Cycles are detected per path: the set of names already
// inlined along the current path is copied whenever a reference branches
// into a subtree, so sibling subtrees can legitimately inline the same
// definition without tripping a false cycle.
type Simplifier struct {
	definitions map[string]interface{}
	opts        SimplifyOptions
	log         logr.Logger
}

// NewSimplifier creates a Simplifier over the given definitions map.
func NewSimplifier(definitions map[string]interface{}, opts SimplifyOptions, log logr.Logger) *Simplifier {
	return &Simplifier{definitions: definitions, opts: opts, log: log}
}

// SimplifyDefinition returns a simplified copy of the named definition body.
// The name itself starts on the path, so a definition referencing itself is
// truncated immediately.
func (s *Simplifier) SimplifyDefinition(name string, body interface{}) interface{} {
	return s.simplify(body, sets.New(name), 0)
}

func (s *Simplifier) simplify(obj interface{}, visited sets.Set[string], depth int) interface{} {
	if depth > s.opts.MaxDepth {
		return truncate(obj)
	}

	switch node := obj.(type) {
	case map[string]interface{}:
		if ref, ok := schema.Ref(node); ok {
			return s.resolveRef(node, ref, visited, depth)
		}
		return s.simplifyMap(node, visited, depth)
	case []interface{}:
		result := make([]interface{}, len(node))
		for i, item := range node {
			result[i] = s.simplify(item, visited, depth+1)
		}
		return result
	default:
		return obj
	}
}

// resolveRef inlines the referenced definition body, or truncates when the
// name is already on the current path.
func (s *Simplifier) resolveRef(node map[string]interface{}, ref string, visited sets.Set[string], depth int) interface{} {
	target := schema.RefTarget(ref)

	if visited.Has(target) {
		s.log.V(1).Info("reference cycle on path, truncating", "target", target)
		placeholder := schema.OpenObject()
		schema.CopyMetadata(node, placeholder)
		return placeholder
	}

	var body interface{}
	if schema.IsLocalRef(ref) {
		body = s.definitions[target]
	}
	if body == nil {
		// Dangling or non-local reference: nothing to inline, fall back to
		// the placeholder.
		s.log.V(1).Info("unresolvable reference", "ref", ref)
		placeholder := schema.OpenObject()
		schema.CopyMetadata(node, placeholder)
		return placeholder
	}

	// The path set must not leak into sibling subtrees; clone before
	// descending.
	path := visited.Clone()
	path.Insert(target)

	resolved := s.simplify(body, path, depth+1)
	if m, ok := resolved.(map[string]interface{}); ok {
		schema.CopyMetadata(node, m)
		return m
	}
	return resolved
}

func (s *Simplifier) simplifyMap(node map[string]interface{}, visited sets.Set[string], depth int) interface{} {
	result := make(map[string]interface{}, len(node))

	for key, value := range node {
		switch {
		case key == "allOf" || key == "anyOf" || key == "oneOf":
			branches, ok := value.([]interface{})
			if !ok || len(branches) == 0 {
				continue
			}
			result[key] = s.simplifyBranches(branches, visited, depth)
		case key == "properties":
			props, ok := value.(map[string]interface{})
			if !ok {
				result[key] = value
				continue
			}
			simplified := make(map[string]interface{}, len(props))
			for name, prop := range props {
				simplified[name] = s.simplify(prop, visited, depth+1)
			}
			result[key] = simplified
		case key == "items":
			result[key] = s.simplify(value, visited, depth+1)
		case key == "additionalProperties":
			if m, ok := value.(map[string]interface{}); ok {
				result[key] = s.simplify(m, visited, depth+1)
			} else {
				result[key] = value
			}
		case schema.MetadataKeys.Has(key):
			result[key] = value
		default:
			switch value.(type) {
			case map[string]interface{}, []interface{}:
				result[key] = s.simplify(value, visited, depth+1)
			default:
				result[key] = value
			}
		}
	}

	schema.CopyMetadata(node, result)
	return result
}

// simplifyBranches simplifies each combinator branch independently, then
// re-categorizes the results so that the caps keep a spread of shapes:
// all primitive branches, then object, array and remaining branches up to
// their per-kind caps, the whole list bounded by MaxBranches.
func (s *Simplifier) simplifyBranches(branches []interface{}, visited sets.Set[string], depth int) []interface{} {
	var primitives, objects, arrays, others []interface{}

	for _, branch := range branches {
		simplified := s.simplify(branch, visited, depth+1)
		switch {
		case schema.IsPrimitive(simplified):
			primitives = append(primitives, simplified)
		case shapeOf(simplified) == "object":
			objects = append(objects, simplified)
		case shapeOf(simplified) == "array":
			arrays = append(arrays, simplified)
		default:
			others = append(others, simplified)
		}
	}

	kept := make([]interface{}, 0, len(branches))
	kept = append(kept, primitives...)
	kept = append(kept, capped(objects, s.opts.MaxObjectBranches)...)
	kept = append(kept, capped(arrays, s.opts.MaxArrayBranches)...)
	kept = append(kept, capped(others, s.opts.MaxOtherBranches)...)
	return capped(kept, s.opts.MaxBranches)
}

func shapeOf(v interface{}) string {
	m, ok := v.(map[string]interface{})
	if !ok {
		return ""
	}
	t, _ := m["type"].(string)
	return t
}

func capped(branches []interface{}, max int) []interface{} {
	if len(branches) > max {
		return branches[:max]
	}
	return branches
}

// truncate replaces a node past the depth bound with an open placeholder,
// keeping the declared type and metadata when the node offers them.
func truncate(obj interface{}) map[string]interface{} {
	node, ok := obj.(map[string]interface{})
	if !ok {
		return schema.OpenObject()
	}
	result := map[string]interface{}{
		"additionalProperties": true,
	}
	if t, ok := node["type"].(string); ok {
		result["type"] = t
	}
	schema.CopyMetadata(node, result)
	return result
}
