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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amis-tools/amisgen/pkg/schema"
)

func TestNormalizeEndToEnd(t *testing.T) {
	doc, err := schema.Parse([]byte(`{
		"$ref": "#/definitions/Page",
		"title": "page schema",
		"definitions": {
			"Page": {
				"type": "object",
				"properties": {
					"body": {"$ref": "#/definitions/Node"},
					"visible": {"type": ["boolean", "string"]}
				}
			},
			"Node": {
				"type": "object",
				"properties": {
					"children": {"items": {"$ref": "#/definitions/Node"}}
				}
			}
		}
	}`))
	require.NoError(t, err)

	out, report, err := Normalize(doc, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Definitions)
	// Node cycles on itself and Page reaches it, so both are marked.
	assert.Equal(t, 2, report.Cyclic)
	assert.Greater(t, report.Rewrites, 0)

	// Root keys survive, and the declared dialect is stamped.
	assert.Equal(t, schema.Draft07, out["$schema"])
	assert.Equal(t, "#/definitions/Page", out["$ref"])
	assert.Equal(t, "page schema", out["title"])

	defs := out.Definitions()
	require.NotNil(t, defs)
	require.Contains(t, defs, "Page")
	require.Contains(t, defs, "Node")

	// No reference in the output points back into definitions; everything
	// reachable has been inlined or truncated.
	assertNoLocalRefs(t, map[string]interface{}(out)["definitions"])
}

func assertNoLocalRefs(t *testing.T, v interface{}) {
	t.Helper()
	switch node := v.(type) {
	case map[string]interface{}:
		if ref, ok := node["$ref"].(string); ok {
			assert.False(t, schema.IsLocalRef(ref), "unresolved local reference %q", ref)
		}
		for _, child := range node {
			assertNoLocalRefs(t, child)
		}
	case []interface{}:
		for _, item := range node {
			assertNoLocalRefs(t, item)
		}
	}
}

func TestNormalizeTypeListRepaired(t *testing.T) {
	doc := schema.Document{
		"definitions": map[string]interface{}{
			"Flag": map[string]interface{}{
				"type": []interface{}{"boolean", "string"},
			},
		},
	}

	out, report, err := Normalize(doc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Rewrites)

	flag := out.Definitions()["Flag"].(map[string]interface{})
	assert.NotContains(t, flag, "type")
	branches, ok := flag["anyOf"].([]interface{})
	require.True(t, ok)
	assert.Len(t, branches, 2)
}

func TestNormalizeAcyclicOutput(t *testing.T) {
	doc := schema.Document{
		"definitions": map[string]interface{}{
			"A": map[string]interface{}{
				"properties": map[string]interface{}{
					"b": map[string]interface{}{"$ref": "#/definitions/B"},
				},
			},
			"B": map[string]interface{}{
				"properties": map[string]interface{}{
					"a": map[string]interface{}{"$ref": "#/definitions/A"},
				},
			},
		},
	}

	out, report, err := Normalize(doc, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Cyclic)

	cycles := CyclicDefinitions(out.Definitions())
	assert.Empty(t, cycles, "normalized output must be acyclic")
}

func TestNormalizeMissingDefinitions(t *testing.T) {
	doc := schema.Document{"type": "object"}

	_, _, err := Normalize(doc, DefaultOptions())
	assert.ErrorIs(t, err, schema.ErrNoDefinitions)
}

func TestNormalizeDeterministic(t *testing.T) {
	build := func() schema.Document {
		doc, err := schema.Parse([]byte(`{
			"definitions": {
				"A": {"properties": {"x": {"$ref": "#/definitions/B"}}},
				"B": {"type": "string"},
				"C": {"anyOf": ["string", {"type": "object"}]}
			}
		}`))
		require.NoError(t, err)
		return doc
	}

	first, _, err := Normalize(build(), DefaultOptions())
	require.NoError(t, err)
	second, _, err := Normalize(build(), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
