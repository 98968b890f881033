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

package lint

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/config"
	"fillmore-labs.com/hoistguard/internal/diag"
	"fillmore-labs.com/hoistguard/internal/jsast"
)

// Options defines configurable parameters for a [Linter].
type Options struct {
	// Behavior holds the generated file and directive switches.
	Behavior config.Behavior

	// SourceType forces sources to be parsed as script or module.
	SourceType jsast.Kind

	// Logger receives debug records; nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	return Options{
		Behavior:   config.DefaultBehavior(),
		SourceType: jsast.Auto,
	}
}

// Finding is a diagnostic with resolved source positions.
type Finding struct {
	diag.Diagnostic

	// Start and End are the 1-based positions of the diagnostic span.
	Start, End jsast.Position
}

// Result holds the findings for one source.
type Result struct {
	// File is the name the source was linted under.
	File string

	// Kind is the kind the source was parsed as.
	Kind jsast.Kind

	// Skipped is true for generated sources that were not linted.
	Skipped bool

	// Findings are the unsuppressed diagnostics in source order.
	Findings []Finding
}

// Linter runs a set of rules over JavaScript sources.
type Linter struct {
	rules    []Rule
	behavior config.Behavior
	kind     jsast.Kind
	logger   *slog.Logger
}

// New creates a [Linter] running rules with the given options.
func New(rules []Rule, opts Options) *Linter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Linter{
		rules:    rules,
		behavior: opts.Behavior,
		kind:     opts.SourceType,
		logger:   logger,
	}
}

// LintSource lints a single source named name.
func (l *Linter) LintSource(ctx context.Context, name string, src []byte) (Result, error) {
	prog, err := jsast.Parse(ctx, name, src, l.kind)
	if err != nil {
		return Result{File: name}, err
	}
	defer prog.Close()

	res := Result{File: name, Kind: prog.Kind}

	cf := astutil.NewCurrentFile(prog)
	if cf.Generated() && !l.behavior.Enabled(config.IncludeGenerated) {
		l.logger.DebugContext(ctx, "Skipping generated file", slog.String("file", name))

		res.Skipped = true

		return res, nil
	}

	var bag diag.Bag
	for _, rule := range l.rules {
		rule.Lint(prog, &bag)
	}

	if l.behavior.Enabled(config.Directives) {
		bag.Filter(func(d diag.Diagnostic) bool { return !cf.Suppressed(d.Code, d.Span.Start) })
	}

	bag.Sort()

	res.Findings = make([]Finding, 0, bag.Len())
	for _, d := range bag.Items() {
		res.Findings = append(res.Findings, Finding{
			Diagnostic: d,
			Start:      prog.Position(d.Span.Start),
			End:        prog.Position(d.Span.End),
		})
	}

	return res, nil
}

// LintFiles lints the files at paths using up to jobs goroutines, all available processors when jobs <= 0.
//
// Results are returned in the order of paths, omitting files that could not be read or parsed.
// Those failures are combined into the returned error and do not stop the other files from being linted.
func (l *Linter) LintFiles(ctx context.Context, paths []string, jobs int) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))
	errs := make([]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i], errs[i] = l.lintFile(gctx, path)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result *multierror.Error

	linted := results[:0]
	for i, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)

			continue
		}

		linted = append(linted, results[i])
	}

	return linted, result.ErrorOrNil()
}

func (l *Linter) lintFile(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	src, err := os.ReadFile(path)
	if err != nil {
		return Result{File: path}, fmt.Errorf("reading source: %w", err)
	}

	res, err := l.LintSource(ctx, path, src)
	if err != nil {
		return res, err
	}

	l.logger.DebugContext(ctx, "Linted file",
		slog.String("file", path),
		slog.Int("findings", len(res.Findings)),
		slog.Duration("duration", time.Since(start)))

	return res, nil
}
