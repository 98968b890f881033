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

import sitter "github.com/smacker/go-tree-sitter"

// bodyFunc returns the statement block forming the scope root of a function-like node,
// or nil when the node has no block body.
type bodyFunc func(n *sitter.Node) *sitter.Node

// functionScopes lists the node types introducing a function scope.
// Both passes consult this table, so new function-like node types only need an entry here.
var functionScopes = map[string]bodyFunc{
	// keep-sorted start
	"arrow_function":                 blockBody, // expression bodies have no scope root
	"function":                       blockBody, // older grammar name of function_expression
	"function_declaration":           blockBody,
	"function_expression":            blockBody,
	"generator_function":             blockBody,
	"generator_function_declaration": blockBody,
	"method_definition":              blockBody, // methods, accessors and constructors
	// keep-sorted end
}

// functionBody returns the body of a function-like node.
func functionBody(n *sitter.Node) (body *sitter.Node, ok bool) {
	get, ok := functionScopes[n.Type()]
	if !ok {
		return nil, false
	}

	body = get(n)

	return body, body != nil
}

func blockBody(n *sitter.Node) *sitter.Node {
	body := n.ChildByFieldName("body")
	if body == nil || body.Type() != "statement_block" {
		return nil
	}

	return body
}

// isFunctionExpression reports whether n is an anonymous or named function expression.
func isFunctionExpression(n *sitter.Node) bool {
	switch n.Type() {
	case "function", "function_expression", "generator_function":
		return true
	}

	return false
}
