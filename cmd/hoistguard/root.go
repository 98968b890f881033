// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Exit codes of the hoistguard command.
const (
	exitOK       = 0
	exitProblems = 1
	exitFailure  = 2
)

// errProblemsFound is returned by the lint command when diagnostics were reported.
var errProblemsFound = errors.New("problems found")

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, errProblemsFound):
		return exitProblems

	default:
		_, _ = fmt.Fprintf(stderr, "hoistguard: %v\n", err)

		return exitFailure
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags lintFlags

	root := &cobra.Command{
		Use:   "hoistguard [flags] [paths...]",
		Short: "Report declarations outside the root of their scope in JavaScript files",
		Long: `hoistguard lints JavaScript files and directories for function and var
declarations that are not placed directly in the body of a program or function.

Directories are searched recursively for .js, .mjs and .cjs files, skipping
node_modules and dot directories. Settings are read from the nearest
.hoistguard.toml unless --config is given; command line flags take precedence.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &flags)
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags.register(root)

	root.AddCommand(newRulesCmd(), newExplainCmd())

	return root
}

func version() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}

	return "(devel)"
}
