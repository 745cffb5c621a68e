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
	"github.com/spf13/cobra"
)

// version is stamped at build time via
// -ldflags "-X .../internal/command.version=v1.2.3".
var version = "dev"

func versionString() string {
	return version
}

// NewVersionCommand prints the toolchain version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the amisgen version",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(versionString())
		},
	}
}
