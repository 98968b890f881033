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
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Kind distinguishes ECMAScript modules from classic scripts.
type Kind uint8

const (
	// Auto detects the kind from the file name and the top-level statements.
	Auto Kind = iota
	// Script is a classic script without import or export statements.
	Script
	// Module is an ECMAScript module.
	Module
)

func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case Script:
		return "script"
	case Module:
		return "module"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind converts a source type name into a [Kind].
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "script":
		return Script, nil
	case "module":
		return Module, nil
	}

	return Auto, fmt.Errorf("unknown source type %q (want auto, module or script)", s)
}

var (
	// ErrSyntax is returned for sources that do not parse cleanly.
	ErrSyntax = errors.New("syntax error")

	// ErrModuleSyntax is returned when a source parsed as script contains import or export statements.
	ErrModuleSyntax = errors.New("import or export statement in script")
)

// SyntaxError describes the first syntax error found in a source file.
type SyntaxError struct {
	Name string
	Pos  Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%s: %v", e.Name, e.Pos, ErrSyntax)
}

// Unwrap returns [ErrSyntax].
func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Program is a parsed JavaScript source file.
type Program struct {
	// Name is the file name used for diagnostics.
	Name string

	// Kind is either [Script] or [Module], never [Auto].
	Kind Kind

	// Source is the parsed source text.
	Source []byte

	// Root is the "program" node of the syntax tree.
	Root *sitter.Node

	tree  *sitter.Tree
	lines []int
}

// Parse parses src as JavaScript.
//
// Each call uses its own parser, so independent sources may be parsed concurrently.
// The caller must [Program.Close] the result when done with the tree.
func Parse(ctx context.Context, name string, src []byte, kind Kind) (*Program, error) {
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	p := &Program{
		Name:   name,
		Source: src,
		Root:   tree.RootNode(),
		tree:   tree,
		lines:  lineStarts(src),
	}

	if p.Root.HasError() {
		bad := firstError(p.Root)
		if bad == nil {
			bad = p.Root
		}

		pos := p.Position(bad.StartByte())
		tree.Close()

		return nil, &SyntaxError{Name: name, Pos: pos}
	}

	moduleSyntax := hasModuleSyntax(p.Root)

	switch kind {
	case Auto:
		p.Kind = detectKind(name, moduleSyntax)

	case Script:
		if moduleSyntax {
			tree.Close()

			return nil, fmt.Errorf("%s: %w", name, ErrModuleSyntax)
		}

		p.Kind = Script

	default:
		p.Kind = Module
	}

	return p, nil
}

// Close releases the syntax tree. Nodes of the program must not be used afterwards.
func (p *Program) Close() {
	if p.tree != nil {
		p.tree.Close()
		p.tree = nil
	}
}

// Text returns the source text covered by span.
func (p *Program) Text(span Span) string {
	end := min(int(span.End), len(p.Source))
	start := min(int(span.Start), end)

	return string(p.Source[start:end])
}

// Content returns the source text of n.
func (p *Program) Content(n *sitter.Node) string {
	return p.Text(SpanOf(n))
}

// Position converts a byte offset into a 1-based line and column.
func (p *Program) Position(offset uint32) Position {
	off, err := safecast.Conv[int](offset)
	if err != nil || off > len(p.Source) {
		off = len(p.Source)
	}

	i, found := slices.BinarySearch(p.lines, off)
	if !found {
		i--
	}

	return Position{Line: i + 1, Column: off - p.lines[i] + 1}
}

func lineStarts(src []byte) []int {
	lines := make([]int, 1, bytes.Count(src, []byte{'\n'})+1)

	for off := 0; ; {
		i := bytes.IndexByte(src[off:], '\n')
		if i < 0 {
			break
		}

		off += i + 1
		lines = append(lines, off)
	}

	return lines
}

func detectKind(name string, moduleSyntax bool) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".mjs":
		return Module

	case ".cjs":
		return Script
	}

	if moduleSyntax {
		return Module
	}

	return Script
}

func hasModuleSyntax(root *sitter.Node) bool {
	for item := range NamedChildren(root) {
		switch item.Type() {
		case "import_statement", "export_statement":
			return true
		}
	}

	return false
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}

		if bad := firstError(child); bad != nil {
			return bad
		}
	}

	return nil
}
