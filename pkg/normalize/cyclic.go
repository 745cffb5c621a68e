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
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/amis-tools/amisgen/pkg/graph"
	"github.com/amis-tools/amisgen/pkg/schema"
)

// collectRefs scans a definition body for reference markers and records the
// referenced names. References may be nested arbitrarily deep inside unions,
// property maps and array-item slots, so the whole structure is walked.
func collectRefs(v interface{}, refs sets.Set[string]) {
	switch t := v.(type) {
	case map[string]interface{}:
		if ref, ok := schema.Ref(t); ok {
			refs.Insert(schema.RefTarget(ref))
		}
		for _, value := range t {
			collectRefs(value, refs)
		}
	case []interface{}:
		for _, item := range t {
			collectRefs(item, refs)
		}
	}
}

// CyclicDefinitions computes the set of definition names that participate in
// at least one reference cycle. References to names absent from the
// definitions map are absent edges, not errors. The computation is a pure
// read of the input.
func CyclicDefinitions(definitions map[string]interface{}) sets.Set[string] {
	g := graph.New[string]()
	for name := range definitions {
		// Names are map keys, so duplicates cannot occur.
		_ = g.AddVertex(name)
	}
	for name, body := range definitions {
		refs := sets.New[string]()
		collectRefs(body, refs)
		_ = g.AddDependencies(name, refs.UnsortedList())
	}
	return g.CyclicVertices()
}
