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

package astutil

import (
	"regexp"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/hoistguard/internal/jsast"
)

// hoistguard is the name of the linter.
const hoistguard = "hoistguard"

// CurrentFile holds file information for analysis: whether the file is
// generated and which diagnostics are suppressed by comments.
type CurrentFile struct {
	prog      *jsast.Program
	generated bool

	// file holds a file-level directive, nil when there is none.
	file *directive

	// sameLine holds directives suppressing diagnostics on their own line.
	sameLine map[int]directive

	// nextLine holds directives suppressing diagnostics on the following line, keyed by that line.
	nextLine map[int]directive
}

// directive lists the codes a suppression comment applies to. No codes means all.
type directive struct {
	codes []string
}

func (d directive) matches(code string) bool {
	if len(d.codes) == 0 {
		return true
	}

	return slices.ContainsFunc(d.codes, func(c string) bool {
		return c == code || c == hoistguard || c == "all"
	})
}

// NewCurrentFile creates a new [CurrentFile] from a parsed program.
func NewCurrentFile(prog *jsast.Program) CurrentFile {
	if prog == nil || prog.Root == nil {
		return CurrentFile{}
	}

	c := CurrentFile{
		prog:      prog,
		generated: strings.HasSuffix(strings.ToLower(prog.Name), ".min.js"),
		sameLine:  make(map[int]directive),
		nextLine:  make(map[int]directive),
	}

	header := headerEnd(prog.Root)

	for n := range jsast.Preorder(prog.Root) {
		if n.Type() != "comment" {
			continue
		}

		text := commentText(prog.Content(n))
		inHeader := n.StartByte() < header

		if inHeader && isGenerated(text) {
			c.generated = true
		}

		line := prog.Position(n.StartByte()).Line
		endLine := prog.Position(n.EndByte()).Line

		switch kind, d, ok := parseDirective(text); {
		case !ok:

		case kind == ignoreFile:
			if inHeader && c.file == nil {
				c.file = &d
			}

		case kind == ignoreNext:
			c.nextLine[endLine+1] = d

		case kind == nolint:
			c.sameLine[line] = d
		}
	}

	return c
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Suppressed reports whether a diagnostic with the given code starting at offset is suppressed by a comment.
func (c CurrentFile) Suppressed(code string, offset uint32) bool {
	if c.prog == nil {
		return false
	}

	if c.file != nil && c.file.matches(code) {
		return true
	}

	line := c.prog.Position(offset).Line

	if d, ok := c.sameLine[line]; ok && d.matches(code) {
		return true
	}

	if d, ok := c.nextLine[line]; ok && d.matches(code) {
		return true
	}

	return false
}

// headerEnd returns the offset of the first statement; comments before it form the file header.
func headerEnd(root *sitter.Node) uint32 {
	for n := range jsast.NamedChildren(root) {
		switch n.Type() {
		case "comment", "hash_bang_line":
			continue
		}

		return n.StartByte()
	}

	return root.EndByte()
}

type directiveKind uint8

const (
	nolint     directiveKind = iota // nolint:hoistguard
	ignoreNext                      // deno-lint-ignore
	ignoreFile                      // deno-lint-ignore-file
)

var nolintPattern = regexp.MustCompile(`^nolint:([a-zA-Z0-9,_-]+)`)

// parseDirective parses a suppression comment.
func parseDirective(text string) (directiveKind, directive, bool) {
	if matches := nolintPattern.FindStringSubmatch(text); matches != nil {
		var codes []string
		for code := range strings.SplitSeq(matches[1], ",") {
			codes = append(codes, strings.ToLower(strings.TrimSpace(code)))
		}

		return nolint, directive{codes: codes}, true
	}

	// Anything after " -- " explains the directive.
	text, _, _ = strings.Cut(text, " -- ")

	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, directive{}, false
	}

	switch fields[0] {
	case "deno-lint-ignore-file":
		return ignoreFile, directive{codes: fields[1:]}, true

	case "deno-lint-ignore":
		return ignoreNext, directive{codes: fields[1:]}, true
	}

	return 0, directive{}, false
}

// commentText strips comment delimiters.
func commentText(comment string) string {
	if text, ok := strings.CutPrefix(comment, "//"); ok {
		return strings.TrimSpace(text)
	}

	text := strings.TrimPrefix(comment, "/*")
	text = strings.TrimSuffix(text, "*/")

	return strings.TrimSpace(text)
}

var generatedPattern = regexp.MustCompile(`(?m)^\s*\*?\s*(Code generated .* DO NOT EDIT\.|@generated\b)`)

// isGenerated reports whether a header comment marks the file as generated.
func isGenerated(text string) bool {
	return generatedPattern.MatchString(text)
}
