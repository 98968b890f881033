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
	"encoding/json"
	"io"

	"fillmore-labs.com/hoistguard/internal/lint"
)

// DiagnosticJSON is the JSON representation of a finding.
type DiagnosticJSON struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Hint      string `json:"hint,omitempty"`
}

func writeJSON(w io.Writer, results []lint.Result) error {
	out := make([]DiagnosticJSON, 0, Count(results))

	for _, r := range results {
		for _, f := range r.Findings {
			out = append(out, DiagnosticJSON{
				File:      r.File,
				Line:      f.Start.Line,
				Column:    f.Start.Column,
				EndLine:   f.End.Line,
				EndColumn: f.End.Column,
				Code:      f.Code,
				Message:   f.Message,
				Hint:      f.Hint,
			})
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(out)
}
