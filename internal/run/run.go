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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"os"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hoistguard/internal/jsast"
	"fillmore-labs.com/hoistguard/internal/lint"
	"fillmore-labs.com/hoistguard/internal/report"
)

// Run executes the hoistguard analyzer over the JavaScript files embedded by the package.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "HoistGuard")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	files := EmbeddedFiles(p)
	if len(files) == 0 {
		return nil, nil
	}

	linter := lint.New(lint.DefaultRegistry().Rules(), lint.Options{
		Behavior:   r.Behavior,
		SourceType: r.SourceType,
	})

	for _, f := range files {
		lintFile(ctx, p, linter, f)
	}

	return nil, nil
}

func lintFile(ctx context.Context, p *analysis.Pass, linter *lint.Linter, f EmbeddedFile) {
	defer trace.StartRegion(ctx, "LintFile").End()

	src, err := os.ReadFile(f.Path)
	if err != nil {
		p.Report(analysis.Diagnostic{
			Pos:     f.Directive,
			Message: fmt.Sprintf("Cannot read embedded file: %v (hoistguard)", err),
		})

		return
	}

	file := p.Fset.AddFile(f.Path, -1, len(src))
	file.SetLinesForContent(src)

	res, err := linter.LintSource(ctx, f.Path, src)
	if err != nil {
		pos := file.Pos(0)

		var serr *jsast.SyntaxError
		if errors.As(err, &serr) && serr.Pos.IsValid() && serr.Pos.Line <= file.LineCount() {
			pos = file.LineStart(serr.Pos.Line) + token.Pos(serr.Pos.Column-1)
		}

		p.Report(analysis.Diagnostic{
			Pos:     pos,
			Message: fmt.Sprintf("Cannot lint embedded file: %v (hoistguard)", err),
			Related: []analysis.RelatedInformation{{Pos: f.Directive, Message: "Embedded here"}},
		})

		return
	}

	report.ProcessDiagnostics(ctx, p, file, res.Findings)
}
