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

package report

import (
	"context"
	"fmt"
	"go/token"
	"runtime/trace"

	"fortio.org/safecast"
	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hoistguard/internal/jsast"
	"fillmore-labs.com/hoistguard/internal/lint"
)

// ProcessDiagnostics emits the findings of a linted embedded file to the analysis framework.
//
// Byte spans are converted to positions in file, which must have been added to the pass
// file set with the linted source. The rule code is used as the diagnostic category and
// appended to the message, related scope roots carry the hint.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, file *token.File, findings []lint.Finding) {
	if len(findings) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	for _, f := range findings {
		pos, end, ok := positions(file, f.Span)
		if !ok {
			continue
		}

		diagnostic := analysis.Diagnostic{
			Pos:      pos,
			End:      end,
			Category: f.Code,
			Message:  fmt.Sprintf("%s (%s)", f.Message, f.Code),
		}

		for _, rel := range f.Related {
			rpos, rend, ok := positions(file, rel.Span)
			if !ok {
				continue
			}

			message := rel.Message
			if f.Hint != "" {
				message += ": " + f.Hint
			}

			diagnostic.Related = append(diagnostic.Related, analysis.RelatedInformation{
				Pos:     rpos,
				End:     rend,
				Message: message,
			})
		}

		p.Report(diagnostic)
	}
}

// positions converts a byte span to positions in file.
func positions(file *token.File, span jsast.Span) (pos, end token.Pos, ok bool) {
	start, err1 := safecast.Conv[int](span.Start)
	stop, err2 := safecast.Conv[int](span.End)

	if err1 != nil || err2 != nil || stop > file.Size() || start > stop {
		return token.NoPos, token.NoPos, false
	}

	return file.Pos(start), file.Pos(stop), true
}
