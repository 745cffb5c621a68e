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
	"encoding/json"
	"errors"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Draft07 is the JSON Schema dialect emitted for normalized documents.
const Draft07 = "http://json-schema.org/draft-07/schema#"

var (
	// ErrNotObject is returned when the document root is not a JSON object.
	ErrNotObject = errors.New("document root is not an object")
	// ErrNoDefinitions is returned when the document has no usable
	// definitions map.
	ErrNoDefinitions = errors.New("document has no definitions map")
)

// Document is a schema document: a root object carrying a "definitions" map
// from type names to arbitrarily nested bodies. Bodies are kept as raw
// map/slice/primitive values because upstream schemas routinely contain
// constructs (type arrays, anyOf entries that are bare strings) that a typed
// schema representation cannot hold, and repairing those constructs is the
// whole point of this tool.
type Document map[string]interface{}

// Parse decodes and validates a schema document. Validation is fail-fast: an
// invalid document is rejected before any transformation is attempted.
func Parse(data []byte) (Document, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}

	obj, ok := root.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, root)
	}

	defs, ok := obj["definitions"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"definitions\" key", ErrNoDefinitions)
	}
	if _, ok := defs.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("%w: \"definitions\" is %T, not an object", ErrNoDefinitions, defs)
	}

	return Document(obj), nil
}

// Definitions returns the definitions map of the document. For a parsed
// document the map is always present.
func (d Document) Definitions() map[string]interface{} {
	defs, _ := d["definitions"].(map[string]interface{})
	return defs
}

// Marshal serializes the document in the requested output format,
// "json" or "yaml".
func (d Document) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(d, "", "  ")
	case "yaml":
		return yaml.Marshal(d)
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
