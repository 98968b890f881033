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

package lint

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extensions lists the file extensions of JavaScript sources.
var Extensions = []string{".js", ".mjs", ".cjs"}

// Discover expands paths into a sorted list of JavaScript files.
//
// Directories are walked recursively, skipping node_modules, dot directories
// and anything matching one of the exclude glob patterns. Files named
// explicitly are kept regardless of their extension unless excluded.
func Discover(paths, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("exclude pattern %q: %w", pattern, err)
		}
	}

	var files []string

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if !excluded(root, exclude) {
				files = append(files, filepath.Clean(root))
			}

			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && (skipDir(d.Name()) || excluded(path, exclude)) {
					return filepath.SkipDir
				}

				return nil
			}

			if isSource(path) && !excluded(path, exclude) {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}

func isSource(path string) bool {
	return slices.Contains(Extensions, strings.ToLower(filepath.Ext(path)))
}

func skipDir(name string) bool {
	return name == "node_modules" || (len(name) > 1 && name[0] == '.')
}

// excluded matches patterns against the base name and the slash-separated path.
func excluded(path string, exclude []string) bool {
	base, slashed := filepath.Base(path), filepath.ToSlash(filepath.Clean(path))

	for _, pattern := range exclude {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}

		if ok, _ := filepath.Match(pattern, slashed); ok {
			return true
		}
	}

	return false
}
