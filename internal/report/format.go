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
	"fmt"
	"io"

	"fillmore-labs.com/hoistguard/internal/lint"
)

// Format selects the output format of [Write].
type Format string

const (
	// Pretty prints colored diagnostics with hints and a summary.
	Pretty Format = "pretty"

	// Compact prints one line per diagnostic.
	Compact Format = "compact"

	// JSON prints an array of diagnostic objects.
	JSON Format = "json"
)

// Options configure [Write].
type Options struct {
	// Color enables ANSI colors in the pretty format.
	Color bool
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Pretty, Compact, JSON:
		return f, nil
	case "":
		return Pretty, nil
	}

	return "", fmt.Errorf("unknown format %q (want pretty, compact or json)", s)
}

// Write writes the findings of results to w in the given format.
func Write(w io.Writer, format Format, results []lint.Result, opts Options) error {
	switch format {
	case Pretty, "":
		return writePretty(w, results, opts)

	case Compact:
		return writeCompact(w, results)

	case JSON:
		return writeJSON(w, results)
	}

	return fmt.Errorf("unknown format %q", format)
}

// Count returns the number of findings in results.
func Count(results []lint.Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Findings)
	}

	return n
}
