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

package command

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amis-tools/amisgen/pkg/schema"
	"github.com/amis-tools/amisgen/pkg/translate"
)

type translateConfig struct {
	inputFile  string
	outputFile string
	format     string
}

// NewTranslateCommand replaces Chinese text in a schema document with
// English from the built-in dictionary.
func NewTranslateCommand() *cobra.Command {
	config := &translateConfig{}

	cmd := &cobra.Command{
		Use:   "translate",
		Short: "Translate Chinese schema text to English",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(config)
		},
	}

	cmd.Flags().StringVarP(&config.inputFile, "file", "f", "", "Path to the schema document")
	cmd.Flags().StringVarP(&config.outputFile, "output", "o", "", "Path to write the translated document (default: stdout)")
	cmd.Flags().StringVar(&config.format, "format", "json", "Output format (json|yaml)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runTranslate(config *translateConfig) error {
	log := logger()

	data, err := os.ReadFile(config.inputFile)
	if err != nil {
		return fmt.Errorf("failed to read schema document: %w", err)
	}

	doc, err := schema.Parse(data)
	if err != nil {
		return err
	}

	out, stats := translate.Document(doc)
	log.Info("translated schema document",
		"translated", stats.Translated,
		"remaining", stats.Remaining)

	return writeDocument(out, config.outputFile, config.format)
}
