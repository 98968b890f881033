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
	"fmt"

	"fillmore-labs.com/hoistguard/internal/jsast"
)

// DeclarationKind is the kind of a reported declaration.
type DeclarationKind uint8

//go:generate go tool stringer -type DeclarationKind,ScopeRootKind -linecomment
const (
	// FunctionDeclaration is a function or generator declaration.
	FunctionDeclaration DeclarationKind = iota // function

	// VariableDeclaration is a var declaration.
	VariableDeclaration // variable
)

// ScopeRootKind describes where a reported declaration should be moved to.
type ScopeRootKind uint8

const (
	// ModuleRoot is the top level of a module or script.
	ModuleRoot ScopeRootKind = iota // module

	// FunctionRoot is the top level of a function body.
	FunctionRoot // function
)

// Violation is a declaration found outside the root of its governing scope.
type Violation struct {
	// Kind is the declaration kind.
	Kind DeclarationKind

	// Root is the kind of the governing scope root.
	Root ScopeRootKind

	// Span identifies the declaration.
	Span jsast.Span

	// RootSpan is the program or function body the declaration belongs to.
	RootSpan jsast.Span
}

// Message returns the diagnostic message for the violation.
func (v Violation) Message() string {
	return fmt.Sprintf("Move %s declaration to %s root", v.Kind, v.Root)
}

// ValidSet holds the identities of declarations positioned directly at a scope root.
// It is populated once per program by [CollectValid] and only consulted afterwards.
type ValidSet map[jsast.Span]struct{}

// Contains reports whether the declaration with the given span sits at a scope root.
func (v ValidSet) Contains(span jsast.Span) bool {
	_, ok := v[span]

	return ok
}

func (v ValidSet) add(span jsast.Span) {
	v[span] = struct{}{}
}
