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

package report_test

import (
	"go/token"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/hoistguard/internal/report"

	"fillmore-labs.com/hoistguard/internal/diag"
	"fillmore-labs.com/hoistguard/internal/jsast"
	"fillmore-labs.com/hoistguard/internal/lint"
)

func TestProcessDiagnostics(t *testing.T) {
	t.Parallel()

	src := []byte("if (a) { function f() {} }\n")

	fset := token.NewFileSet()
	file := fset.AddFile("inner.js", -1, len(src))
	file.SetLinesForContent(src)

	var got []analysis.Diagnostic

	p := &analysis.Pass{
		Fset:   fset,
		Report: func(d analysis.Diagnostic) { got = append(got, d) },
	}

	findings := []lint.Finding{
		{Diagnostic: diag.Diagnostic{
			Span:    jsast.Span{Start: 9, End: 24},
			Code:    "no-inner-declarations",
			Message: "Move function declaration to module root",
			Hint:    "Move the declaration up into the correct scope",
			Related: []diag.Related{{Span: jsast.Span{Start: 0, End: 26}, Message: "Governing module root"}},
		}},
		{Diagnostic: diag.Diagnostic{Span: jsast.Span{Start: 9, End: 1000}, Code: "out-of-range"}},
	}

	ProcessDiagnostics(t.Context(), p, file, findings)

	want := []analysis.Diagnostic{{
		Pos:      file.Pos(9),
		End:      file.Pos(24),
		Category: "no-inner-declarations",
		Message:  "Move function declaration to module root (no-inner-declarations)",
		Related: []analysis.RelatedInformation{{
			Pos:     file.Pos(0),
			End:     file.Pos(26),
			Message: "Governing module root: Move the declaration up into the correct scope",
		}},
	}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Diagnostics mismatch (-want +got):\n%s", diff)
	}

	if pos := fset.Position(got[0].Pos); pos.Line != 1 || pos.Column != 10 {
		t.Errorf("Diagnostic at %v, want 1:10", pos)
	}
}
