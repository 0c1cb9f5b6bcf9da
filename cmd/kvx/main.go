/*
   Copyright 2025 The kvx Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Command kvx streams documents from a configured source into a
// configured sink.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kvx.dev/kvx/runtime/cliutil"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cliutil.ConnectivityHint(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "kvx [config-file]",
		Short: "kvx streams documents from a source into a sink",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var configFile string
			if len(args) == 1 {
				configFile = args[0]
			}
			return runMigration(cmd.Context(), configFile, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose console logging")
	cmd.SetContext(context.Background())
	return cmd
}
