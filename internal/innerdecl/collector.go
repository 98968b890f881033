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

// collector records declarations sitting directly in a scope root statement list.
type collector struct {
	valid  ValidSet
	module bool
}

// CollectValid returns the set of declarations that already sit at a valid root position.
//
// Roots are the program's top-level items and the statement lists of every
// function-like body, wherever that function occurs in the tree. In modules,
// exported declarations are unwrapped and a default-exported function
// expression is valid regardless of its wrapper.
func CollectValid(prog *jsast.Program) ValidSet {
	c := collector{
		valid:  make(ValidSet),
		module: prog.Kind == jsast.Module,
	}

	c.inspect(prog.Root)

	return c.valid
}

// inspect visits every node below root; the visiting order does not influence the result.
func (c *collector) inspect(root *sitter.Node) {
	stack := []*sitter.Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if n.Type() == "program" {
			c.checkItems(n)
		} else if body, ok := functionBody(n); ok {
			c.checkStatements(body)
		}

		for child := range jsast.NamedChildren(n) {
			stack = append(stack, child)
		}
	}
}

// checkItems classifies the top-level items of a program.
func (c *collector) checkItems(program *sitter.Node) {
	for item := range jsast.NamedChildren(program) {
		if !c.module || item.Type() != "export_statement" {
			c.checkStatement(item)

			continue
		}

		if decl := item.ChildByFieldName("declaration"); decl != nil {
			c.checkStatement(decl)

			continue
		}

		// export default function () {}
		if value := item.ChildByFieldName("value"); value != nil && isFunctionExpression(value) {
			c.valid.add(jsast.SpanOf(value))
		}
	}
}

// checkStatements classifies the statements of a function body.
func (c *collector) checkStatements(body *sitter.Node) {
	for stmt := range jsast.NamedChildren(body) {
		c.checkStatement(stmt)
	}
}

func (c *collector) checkStatement(stmt *sitter.Node) {
	if isRootDeclaration(stmt) {
		c.valid.add(jsast.SpanOf(stmt))
	}
}
