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

// Package testsource provides utilities for parsing JavaScript source code in tests.
//
// It is designed to simplify testing of the hoistguard checks by handling the
// parse and cleanup boilerplate for source fragments.
package testsource

import (
	"testing"

	"fillmore-labs.com/hoistguard/internal/jsast"
)

// Filename is the name given to parsed test sources.
const Filename = "test.js"

// Parse parses a JavaScript source fragment, detecting module syntax automatically.
// The program is closed when the test finishes.
func Parse(tb testing.TB, src string) *jsast.Program {
	tb.Helper()

	return ParseKind(tb, src, jsast.Auto)
}

// ParseKind parses a JavaScript source fragment as the given kind.
// The program is closed when the test finishes.
func ParseKind(tb testing.TB, src string, kind jsast.Kind) *jsast.Program {
	tb.Helper()

	prog, err := jsast.Parse(tb.Context(), Filename, []byte(src), kind)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	tb.Cleanup(prog.Close)

	return prog
}

// Texts returns the source text of each span.
func Texts(prog *jsast.Program, spans []jsast.Span) []string {
	texts := make([]string, len(spans))
	for i, span := range spans {
		texts[i] = prog.Text(span)
	}

	return texts
}
