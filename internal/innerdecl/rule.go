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

package innerdecl

import (
	_ "embed"
	"fmt"

	"fillmore-labs.com/hoistguard/internal/diag"
	"fillmore-labs.com/hoistguard/internal/jsast"
)

// Code is the identifier of the no-inner-declarations rule.
const Code = "no-inner-declarations"

// Hint is attached to every diagnostic of the rule.
// The text has no trailing period, matching the established wording of this rule.
const Hint = "Move the declaration up into the correct scope"

//go:embed docs.md
var docs string

// Rule reports function and var declarations outside the root of their governing scope.
// It accepts no options.
type Rule struct{}

// Code returns the rule identifier.
func (Rule) Code() string { return Code }

// Tags returns the rule tags.
func (Rule) Tags() []string { return []string{"recommended"} }

// Docs returns the rule documentation in Markdown.
func (Rule) Docs() string { return docs }

// Lint reports a diagnostic for every inner declaration of prog, in source order.
func (Rule) Lint(prog *jsast.Program, r diag.Reporter) {
	for _, v := range Check(prog) {
		r.Report(diag.Diagnostic{
			Span:    v.Span,
			Code:    Code,
			Message: v.Message(),
			Hint:    Hint,
			Related: []diag.Related{{
				Span:    v.RootSpan,
				Message: fmt.Sprintf("Governing %s root", v.Root),
			}},
		})
	}
}
