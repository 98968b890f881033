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

// declarationOf classifies n as a function or var declaration.
//
// let and const declarations (lexical_declaration) and classes are not
// subject to the check and are never classified.
func declarationOf(n *sitter.Node) (kind DeclarationKind, span jsast.Span, ok bool) {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration":
		return FunctionDeclaration, jsast.SpanOf(n), true

	case "variable_declaration": // var only
		return VariableDeclaration, jsast.SpanOf(n), true

	case "for_in_statement": // for (var x in y), for (var x of y)
		if span, ok := varHead(n); ok {
			return VariableDeclaration, span, true
		}
	}

	return 0, jsast.Span{}, false
}

// varHead returns the span of a var binding in a for-in or for-of head.
// The head is not a node of its own, so the span reaches from the var keyword to the end of the binding.
func varHead(n *sitter.Node) (jsast.Span, bool) {
	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || c.IsNamed() {
			continue
		}

		switch c.Type() {
		case "var":
			span := jsast.SpanOf(c)
			if left := n.ChildByFieldName("left"); left != nil {
				span.End = left.EndByte()
			}

			return span, true

		case "let", "const", "in", "of", ")":
			return jsast.Span{}, false
		}
	}

	return jsast.Span{}, false
}

// isRootDeclaration reports whether a statement at a scope root is a function or var declaration.
func isRootDeclaration(n *sitter.Node) bool {
	switch n.Type() {
	case "function_declaration", "generator_function_declaration", "variable_declaration":
		return true
	}

	return false
}
