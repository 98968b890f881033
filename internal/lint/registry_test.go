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

package lint_test

import (
	"errors"
	"slices"
	"testing"

	. "fillmore-labs.com/hoistguard/internal/lint"

	"fillmore-labs.com/hoistguard/internal/diag"
	"fillmore-labs.com/hoistguard/internal/innerdecl"
	"fillmore-labs.com/hoistguard/internal/jsast"
)

type fakeRule string

func (f fakeRule) Code() string                     { return string(f) }
func (fakeRule) Tags() []string                     { return nil }
func (fakeRule) Docs() string                       { return "" }
func (fakeRule) Lint(*jsast.Program, diag.Reporter) {}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := NewRegistry(fakeRule("zeta"), innerdecl.Rule{}, fakeRule("alpha"))

	var codes []string
	for _, rule := range r.Rules() {
		codes = append(codes, rule.Code())
	}

	if want := []string{"alpha", innerdecl.Code, "zeta"}; !slices.Equal(codes, want) {
		t.Errorf("Rules() = %v, want %v", codes, want)
	}

	if _, ok := r.Lookup(innerdecl.Code); !ok {
		t.Errorf("Lookup(%q) failed", innerdecl.Code)
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Error("Lookup(missing) succeeded")
	}
}

func TestRegistrySelect(t *testing.T) {
	t.Parallel()

	r := NewRegistry(fakeRule("a"), fakeRule("b"))

	all, err := r.Select(nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("Select(nil) = %v, %v, want all rules", all, err)
	}

	some, err := r.Select([]string{"b", "b"})
	if err != nil || len(some) != 1 || some[0].Code() != "b" {
		t.Errorf("Select(b, b) = %v, %v, want [b]", some, err)
	}

	if _, err := r.Select([]string{"a", "c"}); !errors.Is(err, ErrUnknownRule) {
		t.Errorf("Select(a, c) error = %v, want %v", err, ErrUnknownRule)
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	rule, ok := DefaultRegistry().Lookup(innerdecl.Code)
	if !ok {
		t.Fatalf("Default registry lacks %q", innerdecl.Code)
	}

	if rule.Docs() == "" {
		t.Error("Expected rule documentation")
	}
}
