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
	"errors"
	"fmt"
	"slices"
	"strings"

	"fillmore-labs.com/hoistguard/internal/diag"
	"fillmore-labs.com/hoistguard/internal/innerdecl"
	"fillmore-labs.com/hoistguard/internal/jsast"
)

// ErrUnknownRule is returned when a rule code is not registered.
var ErrUnknownRule = errors.New("unknown rule")

// Rule is a lint rule over a parsed JavaScript program.
type Rule interface {
	// Code returns the unique rule identifier.
	Code() string

	// Tags returns the rule tags, e.g. "recommended".
	Tags() []string

	// Docs returns the rule documentation in Markdown.
	Docs() string

	// Lint reports the diagnostics of prog to r.
	Lint(prog *jsast.Program, r diag.Reporter)
}

// Registry maps rule codes to rules.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry creates a [Registry] holding rules. Later rules replace earlier ones with the same code.
func NewRegistry(rules ...Rule) *Registry {
	r := &Registry{rules: make(map[string]Rule, len(rules))}
	for _, rule := range rules {
		r.rules[rule.Code()] = rule
	}

	return r
}

// DefaultRegistry returns a [Registry] with all built-in rules.
func DefaultRegistry() *Registry {
	return NewRegistry(innerdecl.Rule{})
}

// Lookup returns the rule registered under code.
func (r *Registry) Lookup(code string) (Rule, bool) {
	rule, ok := r.rules[code]

	return rule, ok
}

// Rules returns all registered rules sorted by code.
func (r *Registry) Rules() []Rule {
	rules := make([]Rule, 0, len(r.rules))
	for _, rule := range r.rules {
		rules = append(rules, rule)
	}

	slices.SortFunc(rules, func(a, b Rule) int { return strings.Compare(a.Code(), b.Code()) })

	return rules
}

// Select returns the rules with the given codes, in the order given, or all rules when codes is empty.
func (r *Registry) Select(codes []string) ([]Rule, error) {
	if len(codes) == 0 {
		return r.Rules(), nil
	}

	rules := make([]Rule, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))

	for _, code := range codes {
		code = strings.TrimSpace(code)
		if _, ok := seen[code]; ok {
			continue
		}

		seen[code] = struct{}{}

		rule, ok := r.rules[code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, code)
		}

		rules = append(rules, rule)
	}

	return rules, nil
}
