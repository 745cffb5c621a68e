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

	"github.com/amis-tools/amisgen/pkg/normalize"
	"github.com/amis-tools/amisgen/pkg/schema"
)

type normalizeConfig struct {
	inputFile  string
	outputFile string
	format     string
	maxDepth   int
	maxBranch  int
}

// NewNormalizeCommand breaks cycles, bounds depth and repairs malformed
// constructs in a schema document.
func NewNormalizeCommand() *cobra.Command {
	config := &normalizeConfig{}

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize a schema document for the data-model generator",
		Long: "Normalize repairs malformed schema constructs, wraps cyclic references\n" +
			"in single-branch disjunctions and inlines references up to a bounded\n" +
			"depth, producing a document free of unbounded recursion.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNormalize(config)
		},
	}

	cmd.Flags().StringVarP(&config.inputFile, "file", "f", "", "Path to the schema document")
	cmd.Flags().StringVarP(&config.outputFile, "output", "o", "", "Path to write the normalized document (default: stdout)")
	cmd.Flags().StringVar(&config.format, "format", "json", "Output format (json|yaml)")
	cmd.Flags().IntVar(&config.maxDepth, "max-depth", normalize.DefaultSimplifyOptions().MaxDepth,
		"Maximum reference inlining depth")
	cmd.Flags().IntVar(&config.maxBranch, "max-branches", normalize.DefaultSimplifyOptions().MaxBranches,
		"Maximum total branches kept per allOf/anyOf/oneOf")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runNormalize(config *normalizeConfig) error {
	log := logger()

	data, err := os.ReadFile(config.inputFile)
	if err != nil {
		return fmt.Errorf("failed to read schema document: %w", err)
	}

	doc, err := schema.Parse(data)
	if err != nil {
		return err
	}

	opts := normalize.DefaultOptions()
	opts.MaxDepth = config.maxDepth
	opts.MaxBranches = config.maxBranch
	opts.Logger = log

	out, report, err := normalize.Normalize(doc, opts)
	if err != nil {
		return err
	}
	log.Info("normalized schema document",
		"definitions", report.Definitions,
		"cyclic", report.Cyclic,
		"rewrites", report.Rewrites)

	return writeDocument(out, config.outputFile, config.format)
}

func writeDocument(doc schema.Document, path, format string) error {
	b, err := doc.Marshal(format)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = os.Stdout.Write(append(b, '\n'))
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write output document: %w", err)
	}
	return nil
}
