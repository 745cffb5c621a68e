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

package schema

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
)

// DefinitionsPrefix is the reference prefix for definitions local to the
// document.
const DefinitionsPrefix = "#/definitions/"

// CombinatorKeys are the schema composition keys: conjunction ("allOf") and
// the two disjunctions ("anyOf", "oneOf").
var CombinatorKeys = []string{"allOf", "anyOf", "oneOf"}

// primitiveTypes are the JSON Schema primitive type names.
var primitiveTypes = sets.New(
	"string", "number", "integer", "boolean", "null",
)

// MetadataKeys is the allowlist of descriptive keys preserved onto a node
// even when its structural content is replaced or truncated.
var MetadataKeys = sets.New(
	"description", "title", "default", "examples", "enum", "const",
	"minimum", "maximum", "minLength", "maxLength", "pattern", "format",
	"required", "readOnly", "writeOnly",
)

// Ref returns the reference string of a node, if the node carries one.
func Ref(node map[string]interface{}) (string, bool) {
	ref, ok := node["$ref"].(string)
	return ref, ok
}

// RefTarget extracts the definition name a reference points at. References
// use any number of path segments; the target is the last one.
func RefTarget(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// IsLocalRef reports whether ref points into this document's definitions.
// Non-local references cannot be resolved and are left in place.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, DefinitionsPrefix)
}

// IsPureRef reports whether node is a bare reference, carrying no keys
// besides "$ref".
func IsPureRef(node map[string]interface{}) bool {
	_, ok := Ref(node)
	return ok && len(node) == 1
}

// IsPrimitiveName reports whether s names a primitive type.
func IsPrimitiveName(s string) bool {
	return primitiveTypes.Has(s)
}

// IsPrimitive reports whether node describes a primitive value, string
// enums included.
func IsPrimitive(node interface{}) bool {
	m, ok := node.(map[string]interface{})
	if !ok {
		return false
	}
	t, _ := m["type"].(string)
	return primitiveTypes.Has(t)
}

// OpenObject returns the open-object placeholder: a terminal node accepting
// any object-shaped value, used to truncate cycles and excessive depth.
func OpenObject() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": true,
	}
}

// CopyMetadata copies every allowlisted metadata key present on src onto dst,
// without overwriting keys dst already has.
func CopyMetadata(src, dst map[string]interface{}) {
	for key := range MetadataKeys {
		if v, ok := src[key]; ok {
			if _, exists := dst[key]; !exists {
				dst[key] = v
			}
		}
	}
}
