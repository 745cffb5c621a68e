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

package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amis-tools/amisgen/cmd/amisgen/internal/command"
	"github.com/amis-tools/amisgen/pkg/schema"
)

func TestNewRootCommand(t *testing.T) {
	cmd := command.NewRootCommand()

	assert.Equal(t, "amisgen", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Version)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)
	assert.True(t, cmd.CompletionOptions.DisableDefaultCmd)
}

func TestNewRootCommand_HasDebugFlag(t *testing.T) {
	cmd := command.NewRootCommand()

	flag := cmd.PersistentFlags().Lookup("debug")
	assert.NotNil(t, flag)
	assert.Equal(t, "false", flag.DefValue)
}

func TestNewRootCommand_VersionFlag(t *testing.T) {
	cmd := command.NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), cmd.Version)
}

func TestNewRootCommand_NoArgs_ShowsHelp(t *testing.T) {
	cmd := command.NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "amisgen")
}

func TestVersionCommand(t *testing.T) {
	cmd := command.NewRootCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "dev")
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "schema.json")
	output := filepath.Join(dir, "normalized.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"definitions": {
			"Node": {
				"properties": {
					"child": {"$ref": "#/definitions/Node"},
					"label": {"type": ["string", "number"]}
				}
			}
		}
	}`), 0o644))

	cmd := command.NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"normalize", "-f", input, "-o", output})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	doc, err := schema.Parse(data)
	require.NoError(t, err)

	node, ok := doc.Definitions()["Node"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, node, "properties")
}

func TestNormalizeCommand_MissingInput(t *testing.T) {
	cmd := command.NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"normalize", "-f", filepath.Join(t.TempDir(), "absent.json")})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read schema document")
}

func TestNormalizeCommand_RequiresFile(t *testing.T) {
	cmd := command.NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"normalize"})

	assert.Error(t, cmd.Execute())
}

func TestTranslateCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "schema.json")
	output := filepath.Join(dir, "translated.yaml")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"definitions": {
			"Page": {"description": "页面标题"}
		}
	}`), 0o644))

	cmd := command.NewRootCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"translate", "-f", input, "-o", output, "--format", "yaml"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Page title")
}
