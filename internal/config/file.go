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

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file searched for by [Find].
const FileName = ".hoistguard.toml"

var (
	// ErrUnknownKey is returned for configuration keys hoistguard does not understand.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrInvalidValue is returned for configuration values out of range.
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Formats lists the output formats accepted in the "format" key.
var Formats = []string{"pretty", "compact", "json"}

// SourceTypes lists the values accepted in the "source-type" key.
var SourceTypes = []string{"auto", "module", "script"}

// File is the content of a .hoistguard.toml configuration file.
//
// Pointer fields distinguish unset keys from explicit zero values, so that
// command line flags only override what the file does not set, or vice versa.
type File struct {
	// Rules restricts linting to the listed rule codes. Empty means all rules.
	Rules []string `toml:"rules"`

	// Exclude lists glob patterns of files and directories to skip.
	Exclude []string `toml:"exclude"`

	// Generated enables linting of generated and minified files.
	Generated *bool `toml:"generated"`

	// Directives enables suppression comments.
	Directives *bool `toml:"directives"`

	// SourceType is one of "auto", "module" or "script".
	SourceType string `toml:"source-type"`

	// Jobs limits the number of files linted in parallel. Zero means GOMAXPROCS.
	Jobs int `toml:"jobs"`

	// Format is one of "pretty", "compact" or "json".
	Format string `toml:"format"`

	// Path is the file the configuration was loaded from.
	Path string `toml:"-"`
}

// Load reads and validates a configuration file.
func Load(path string) (File, error) {
	var f File

	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return File{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		return File{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := f.Validate(); err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path

	return f, nil
}

// Validate checks the configuration values.
func (f File) Validate() error {
	if f.SourceType != "" && !slices.Contains(SourceTypes, f.SourceType) {
		return fmt.Errorf("%w: source-type %q (want one of %s)", ErrInvalidValue, f.SourceType, strings.Join(SourceTypes, ", "))
	}

	if f.Format != "" && !slices.Contains(Formats, f.Format) {
		return fmt.Errorf("%w: format %q (want one of %s)", ErrInvalidValue, f.Format, strings.Join(Formats, ", "))
	}

	if f.Jobs < 0 {
		return fmt.Errorf("%w: jobs %d must not be negative", ErrInvalidValue, f.Jobs)
	}

	for _, pattern := range f.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: exclude pattern %q: %w", ErrInvalidValue, pattern, err)
		}
	}

	return nil
}

// Behavior returns the default behavior overridden by the file settings.
func (f File) Behavior() Behavior {
	b := DefaultBehavior()
	b.Apply(IncludeGenerated, f.Generated)
	b.Apply(Directives, f.Directives)

	return b
}

// Find walks up from startDir to locate a configuration file.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}
