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

// Package translate replaces the Chinese text embedded in the upstream
// schema with English, using a built-in phrase dictionary. Anything the
// dictionary does not know is left in place and counted, so callers can see
// how much text remains untranslated.
package translate

import (
	"strings"
	"unicode"

	"github.com/amis-tools/amisgen/pkg/schema"
)

// Stats reports the outcome of a translation walk.
type Stats struct {
	// Translated counts strings that were changed.
	Translated int
	// Remaining counts strings that still contain Han characters.
	Remaining int
}

// ContainsHan reports whether s contains Chinese (Han script) characters.
func ContainsHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// Text translates a single string: exact dictionary match first, then
// longest-phrase substring replacement. Strings without Han characters are
// returned unchanged.
func Text(s string) string {
	if !ContainsHan(s) {
		return s
	}
	if english, ok := dictionary[s]; ok {
		return english
	}
	result := s
	for _, phrase := range phrasesByLength {
		if strings.Contains(result, phrase) {
			result = strings.ReplaceAll(result, phrase, dictionary[phrase])
		}
	}
	return result
}

// Document returns a translated copy of the document.
func Document(doc schema.Document) (schema.Document, Stats) {
	var stats Stats
	translated := walk(map[string]interface{}(doc), &stats)
	return schema.Document(translated.(map[string]interface{})), stats
}

func walk(v interface{}, stats *Stats) interface{} {
	switch node := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(node))
		for key, value := range node {
			result[key] = walk(value, stats)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(node))
		for i, item := range node {
			result[i] = walk(item, stats)
		}
		return result
	case string:
		out := Text(node)
		if out != node {
			stats.Translated++
		}
		if ContainsHan(out) {
			stats.Remaining++
		}
		return out
	default:
		return v
	}
}
