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

package jsast

import (
	"iter"

	sitter "github.com/smacker/go-tree-sitter"
)

// NamedChildren yields the named children of n in source order.
func NamedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			child := n.NamedChild(i)
			if child == nil {
				continue
			}

			if !yield(child) {
				return
			}
		}
	}
}

// Preorder yields n and all its named descendants in depth-first pre-order.
func Preorder(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		preorder(n, yield)
	}
}

func preorder(n *sitter.Node, yield func(*sitter.Node) bool) bool {
	if n == nil {
		return true
	}

	if !yield(n) {
		return false
	}

	for child := range NamedChildren(n) {
		if !preorder(child, yield) {
			return false
		}
	}

	return true
}
