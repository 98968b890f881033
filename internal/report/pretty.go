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
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"

	"fillmore-labs.com/hoistguard/internal/lint"
)

type palette struct {
	location, code, message, hint, summary, ok *color.Color
}

func newPalette(enabled bool) palette {
	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}

		return c
	}

	return palette{
		location: paint(color.Bold),
		code:     paint(color.FgRed),
		message:  paint(color.Bold),
		hint:     paint(color.FgCyan),
		summary:  paint(color.FgRed, color.Bold),
		ok:       paint(color.FgGreen),
	}
}

func writePretty(w io.Writer, results []lint.Result, opts Options) error {
	p := newPalette(opts.Color)
	b := bufio.NewWriter(w)

	files := 0

	for _, r := range results {
		if r.Skipped {
			continue
		}

		files++

		for _, f := range r.Findings {
			_, _ = fmt.Fprintf(b, "%s %s %s\n",
				p.location.Sprintf("%s:%s:", r.File, f.Start),
				p.code.Sprintf("[%s]", f.Code),
				p.message.Sprint(f.Message))

			if f.Hint != "" {
				_, _ = fmt.Fprintf(b, "    %s %s\n", p.hint.Sprint("hint:"), f.Hint)
			}
		}
	}

	switch n := Count(results); n {
	case 0:
		_, _ = fmt.Fprintln(b, p.ok.Sprintf("Checked %s, no problems found", plural(files, "file")))

	default:
		_, _ = fmt.Fprintln(b)
		_, _ = fmt.Fprintln(b, p.summary.Sprintf("Found %s in %s", plural(n, "problem"), plural(files, "file")))
	}

	return b.Flush()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
