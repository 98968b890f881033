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
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/hoistguard/internal/jsast"
)

// scopeRoot is the governing root of the current traversal position.
type scopeRoot struct {
	kind ScopeRootKind
	span jsast.Span
}

// scanner reports function and var declarations missing from the valid set.
type scanner struct {
	valid      ValidSet
	root       scopeRoot
	violations []Violation
}

// Scan walks prog in source order and returns every function or var declaration
// not contained in valid. valid must be the result of [CollectValid] for the same program.
func Scan(prog *jsast.Program, valid ValidSet) []Violation {
	s := scanner{
		valid: valid,
		root:  scopeRoot{kind: ModuleRoot, span: jsast.SpanOf(prog.Root)},
	}

	s.visit(prog.Root)

	return s.violations
}

func (s *scanner) visit(n *sitter.Node) {
	// A function declaration belongs to the enclosing scope, so check before entering its body.
	if kind, span, ok := declarationOf(n); ok && !s.valid.Contains(span) {
		s.violations = append(s.violations, Violation{
			Kind:     kind,
			Root:     s.root.kind,
			Span:     span,
			RootSpan: s.root.span,
		})
	}

	body, isFunction := functionBody(n)
	if !isFunction {
		s.visitChildren(n)

		return
	}

	outer := s.root
	s.root = scopeRoot{kind: FunctionRoot, span: jsast.SpanOf(body)}

	s.visitChildren(n)

	s.root = outer
}

func (s *scanner) visitChildren(n *sitter.Node) {
	for child := range jsast.NamedChildren(n) {
		s.visit(child)
	}
}

// Check runs both passes over prog and returns the violations in source order.
func Check(prog *jsast.Program) []Violation {
	valid := CollectValid(prog)

	return Scan(prog, valid)
}
