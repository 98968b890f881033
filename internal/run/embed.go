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

package run

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/hoistguard/internal/astutil"
	"fillmore-labs.com/hoistguard/internal/lint"
)

// EmbeddedFile is a JavaScript source embedded by a //go:embed directive.
type EmbeddedFile struct {
	// Path is the file system path of the source.
	Path string

	// Directive is the position of the first directive embedding the source.
	Directive token.Pos
}

const embedDirective = "//go:embed"

var errBadPattern = errors.New("invalid //go:embed pattern list")

// EmbeddedFiles returns the JavaScript sources embedded by the Go files of the pass, sorted by path.
//
// Patterns are resolved relative to the directory of the Go file containing the directive,
// following the rules of the embed package: directories are embedded recursively, skipping
// files starting with "." or "_" unless the pattern has an "all:" prefix.
func EmbeddedFiles(p *analysis.Pass) []EmbeddedFile {
	seen := make(map[string]token.Pos)

	for _, file := range p.Files {
		tf := p.Fset.File(file.Pos())
		if tf == nil {
			astutil.InternalError(p, file.Pos(), "File %s without position info", file.Name.Name)

			continue
		}

		dir := filepath.Dir(tf.Name())

		for _, c := range embedComments(file) {
			patterns, err := parsePatterns(strings.TrimPrefix(c.Text, embedDirective))
			if err != nil {
				p.Report(analysis.Diagnostic{Pos: c.Pos(), End: c.End(), Message: fmt.Sprintf("%v (hoistguard)", err)})

				continue
			}

			for _, pattern := range patterns {
				for _, path := range resolvePattern(dir, pattern) {
					if _, ok := seen[path]; !ok {
						seen[path] = c.Pos()
					}
				}
			}
		}
	}

	files := make([]EmbeddedFile, 0, len(seen))
	for path, pos := range seen {
		files = append(files, EmbeddedFile{Path: path, Directive: pos})
	}

	slices.SortFunc(files, func(a, b EmbeddedFile) int { return strings.Compare(a.Path, b.Path) })

	return files
}

// embedComments returns the //go:embed directives of file.
func embedComments(file *ast.File) []*ast.Comment {
	var directives []*ast.Comment

	for _, group := range file.Comments {
		for _, c := range group.List {
			rest, ok := strings.CutPrefix(c.Text, embedDirective)
			if !ok || (rest != "" && !unicode.IsSpace(rune(rest[0]))) {
				continue
			}

			directives = append(directives, c)
		}
	}

	return directives
}

// parsePatterns splits the argument of a //go:embed directive into patterns.
// Patterns are separated by spaces and may be Go string literals.
func parsePatterns(args string) ([]string, error) {
	var patterns []string

	for args = strings.TrimSpace(args); args != ""; args = strings.TrimSpace(args) {
		var pattern string

		switch args[0] {
		case '"', '`':
			quote := args[0]

			end := 1
			for ; end < len(args) && args[end] != quote; end++ {
				if quote == '"' && args[end] == '\\' {
					end++
				}
			}

			if end >= len(args) {
				return nil, fmt.Errorf("%w: unterminated string in %q", errBadPattern, args)
			}

			var err error
			if pattern, err = strconv.Unquote(args[:end+1]); err != nil {
				return nil, fmt.Errorf("%w: %v", errBadPattern, err)
			}

			args = args[end+1:]

		default:
			end := strings.IndexFunc(args, unicode.IsSpace)
			if end < 0 {
				end = len(args)
			}

			pattern, args = args[:end], args[end:]
		}

		patterns = append(patterns, pattern)
	}

	if len(patterns) == 0 {
		return nil, fmt.Errorf("%w: no patterns", errBadPattern)
	}

	return patterns, nil
}

// resolvePattern returns the JavaScript sources matched by an embed pattern in dir.
func resolvePattern(dir, pattern string) []string {
	pattern, all := strings.CutPrefix(pattern, "all:")

	matches, err := filepath.Glob(filepath.Join(dir, filepath.FromSlash(pattern)))
	if err != nil {
		return nil
	}

	var paths []string

	for _, match := range matches {
		_ = filepath.WalkDir(match, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil // skip unreadable entries
			}

			if path != match && !all && hidden(d.Name()) {
				if d.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if !d.IsDir() && isSource(path) {
				paths = append(paths, path)
			}

			return nil
		})
	}

	return paths
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func isSource(path string) bool {
	return slices.Contains(lint.Extensions, strings.ToLower(filepath.Ext(path)))
}
