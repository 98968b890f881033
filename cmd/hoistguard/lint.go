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
	"fmt"
	"log/slog"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"fillmore-labs.com/hoistguard/internal/config"
	"fillmore-labs.com/hoistguard/internal/jsast"
	"fillmore-labs.com/hoistguard/internal/lint"
	"fillmore-labs.com/hoistguard/internal/report"
)

// lintFlags holds the command line flags of the lint command.
type lintFlags struct {
	config       string
	format       string
	jobs         int
	generated    bool
	noDirectives bool
	sourceType   string
	rules        []string
	exclude      []string
	verbose      bool
	noColor      bool
}

func (f *lintFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()

	fs.StringVar(&f.config, "config", "", "configuration file (default: nearest "+config.FileName+")")
	fs.StringVar(&f.format, "format", string(report.Pretty), "output format (pretty|compact|json)")
	fs.IntVar(&f.jobs, "jobs", 0, "max parallel workers (0=auto)")
	fs.BoolVar(&f.generated, "generated", false, "lint generated and minified files")
	fs.BoolVar(&f.noDirectives, "no-directives", false, "ignore nolint and deno-lint-ignore comments")
	fs.StringVar(&f.sourceType, "source-type", "auto", "parse sources as auto, module or script")
	fs.StringSliceVar(&f.rules, "rules", nil, "comma-separated rule codes to run (default: all)")
	fs.StringSliceVar(&f.exclude, "exclude", nil, "glob patterns of files and directories to skip")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug information to stderr")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored output")
}

// settings are the effective lint settings after merging the configuration file and flags.
type settings struct {
	format     report.Format
	jobs       int
	behavior   config.Behavior
	sourceType jsast.Kind
	rules      []string
	exclude    []string
}

func runLint(cmd *cobra.Command, args []string, f *lintFlags) error {
	ctx := cmd.Context()

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	file, err := loadConfig(f.config)
	if err != nil {
		return err
	}

	if file.Path != "" {
		logger.DebugContext(ctx, "Loaded configuration", slog.String("path", file.Path))
	}

	s, err := merge(cmd, file, f)
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "Effective settings",
		slog.String("format", string(s.format)),
		slog.Int("jobs", s.jobs),
		slog.Bool("generated", s.behavior.Enabled(config.IncludeGenerated)),
		slog.Bool("directives", s.behavior.Enabled(config.Directives)),
		slog.String("source-type", s.sourceType.String()),
		slog.Any("rules", s.rules),
		slog.Any("exclude", s.exclude))

	rules, err := lint.DefaultRegistry().Select(s.rules)
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := lint.Discover(paths, s.exclude)
	if err != nil {
		return err
	}

	logger.DebugContext(ctx, "Discovered files", slog.Int("count", len(files)))

	linter := lint.New(rules, lint.Options{
		Behavior:   s.behavior,
		SourceType: s.sourceType,
		Logger:     logger,
	})

	results, lintErr := linter.LintFiles(ctx, files, s.jobs)

	opts := report.Options{Color: !f.noColor && !color.NoColor}
	if err := report.Write(cmd.OutOrStdout(), s.format, results, opts); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if lintErr != nil {
		return lintErr
	}

	if report.Count(results) > 0 {
		return errProblemsFound
	}

	return nil
}

// loadConfig loads the explicit configuration file or the nearest one, if any.
func loadConfig(path string) (config.File, error) {
	if path != "" {
		return config.Load(path)
	}

	found, ok, err := config.Find(".")
	if err != nil || !ok {
		return config.File{}, err
	}

	return config.Load(found)
}

// merge overrides the configuration file values with explicitly set flags.
func merge(cmd *cobra.Command, file config.File, f *lintFlags) (settings, error) {
	fs := cmd.Flags()

	s := settings{
		jobs:     file.Jobs,
		behavior: file.Behavior(),
		rules:    file.Rules,
		exclude:  slices.Concat(file.Exclude, f.exclude),
	}

	formatName := file.Format
	if fs.Changed("format") || formatName == "" {
		formatName = f.format
	}

	format, err := report.ParseFormat(formatName)
	if err != nil {
		return settings{}, err
	}

	s.format = format

	sourceTypeName := file.SourceType
	if fs.Changed("source-type") || sourceTypeName == "" {
		sourceTypeName = f.sourceType
	}

	if s.sourceType, err = jsast.ParseKind(sourceTypeName); err != nil {
		return settings{}, err
	}

	if fs.Changed("jobs") {
		if f.jobs < 0 {
			return settings{}, fmt.Errorf("%w: jobs %d must not be negative", config.ErrInvalidValue, f.jobs)
		}

		s.jobs = f.jobs
	}

	if fs.Changed("generated") {
		s.behavior.Set(config.IncludeGenerated, f.generated)
	}

	if fs.Changed("no-directives") {
		s.behavior.Set(config.Directives, !f.noDirectives)
	}

	if fs.Changed("rules") {
		s.rules = f.rules
	}

	return s, nil
}
