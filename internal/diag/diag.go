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

// Package diag defines the diagnostic records produced by hoistguard rules
// and the sinks accepting them.
package diag

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/hoistguard/internal/jsast"
)

// Diagnostic is a single finding of a rule.
type Diagnostic struct {
	// Span is the source range the diagnostic applies to.
	Span jsast.Span

	// Code is the identifier of the reporting rule, e.g. "no-inner-declarations".
	Code string

	// Message describes the problem.
	Message string

	// Hint suggests how to resolve the problem.
	Hint string

	// Related points to other relevant source ranges.
	Related []Related
}

// Related is additional information attached to a [Diagnostic].
type Related struct {
	Span    jsast.Span
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Span, d.Code, d.Message)
}

// Reporter accepts diagnostics. Rules submit diagnostics in source order.
type Reporter interface {
	Report(d Diagnostic)
}

// Bag collects diagnostics in submission order. The zero value is ready to use.
type Bag struct {
	items []Diagnostic
}

// Report implements [Reporter].
func (b *Bag) Report(d Diagnostic) {
	b.items = append(b.items, d)
}

// Len returns the number of collected diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the collected diagnostics.
func (b *Bag) Items() []Diagnostic { return b.items }

// Filter removes all diagnostics for which keep returns false.
func (b *Bag) Filter(keep func(Diagnostic) bool) {
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool { return !keep(d) })
}

// Sort orders the diagnostics by position, then code. Diagnostics at equal
// positions keep their submission order.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Span.Start, y.Span.Start),
			cmp.Compare(x.Span.End, y.Span.End),
			strings.Compare(x.Code, y.Code),
		)
	})
}
