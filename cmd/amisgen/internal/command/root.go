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
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/amis-tools/amisgen/cmd/amisgen/internal/view"
)

var debugFlag bool

// NewRootCommand builds the amisgen command tree.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "amisgen",
		Short: "amisgen prepares the amis UI schema for data-model generation",
		Long: "amisgen is a build-time toolchain for the amis UI component library's\n" +
			"JSON Schema. It translates embedded Chinese text, repairs malformed\n" +
			"schema constructs, breaks reference cycles and bounds nesting depth so\n" +
			"that a schema-to-data-model generator can consume the result without\n" +
			"recursion or stack-depth errors.",
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
			}
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Set log level to debug")

	cmd.AddCommand(
		NewNormalizeCommand(),
		NewTranslateCommand(),
		NewVersionCommand(),
	)
	return cmd
}

// logger builds the CLI logger after flags have been parsed.
func logger() logr.Logger {
	level := slog.LevelInfo
	if debugFlag {
		level = slog.LevelDebug
	}
	return view.NewLogger(os.Stderr, level)
}

// Execute runs the resolved command and exits the process.
func Execute() {
	// Disable color output if NO_COLOR is set in the environment
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		color.NoColor = true
	}

	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			color.New(color.FgRed).Fprintln(os.Stderr, "Error:", msg)
		}
		os.Exit(1)
	}
}
