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

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files below a temporary directory and returns its path.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return dir
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = execute(t.Context(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestLintClean(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"a.js":                   "function f() { var x; }\n",
		"node_modules/pkg/b.js":  "if (a) { var x; }\n",
		"lib/c.mjs":              "export default function () { var y; }\n",
		"lib/vendor.min.js":      "if (a) { var x; }\n",
		"lib/readme.md":          "if (a) { var x; }\n",
		".cache/d.js":            "if (a) { var x; }\n",
		"lib/suppressed.cjs":     "if (a) { var x; } // nolint:all\n",
		"lib/generated/types.js": "// Code generated by tsc. DO NOT EDIT.\nif (a) { var x; }\n",
	})

	code, stdout, stderr := run(t, "--no-color", dir)

	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "Checked 3 files, no problems found\n", stdout)
	assert.Empty(t, stderr)
}

func TestLintProblems(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"a.js": "if (test) { function doSomething() { } }\n",
	})

	code, stdout, _ := run(t, "--format=compact", filepath.Join(dir, "a.js"))

	require.Equal(t, exitProblems, code)

	want := filepath.Join(dir, "a.js") + ":1:13: Move function declaration to module root (no-inner-declarations)\n"
	assert.Equal(t, want, stdout)
}

func TestLintJSON(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"a.js": "function f() {\n  if (a) {\n    var x = 1;\n  }\n}\n",
	})

	code, stdout, _ := run(t, "--format", "json", dir)

	require.Equal(t, exitProblems, code)

	var got []struct {
		Line    int    `json:"line"`
		Column  int    `json:"column"`
		Code    string `json:"code"`
		Message string `json:"message"`
		Hint    string `json:"hint"`
	}

	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 1)

	assert.Equal(t, 3, got[0].Line)
	assert.Equal(t, 5, got[0].Column)
	assert.Equal(t, "no-inner-declarations", got[0].Code)
	assert.Equal(t, "Move variable declaration to function root", got[0].Message)
	assert.Equal(t, "Move the declaration up into the correct scope", got[0].Hint)
}

func TestLintFlags(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"gen.js":      "// Code generated by gen. DO NOT EDIT.\nif (a) { var x; }\n",
		"suppress.js": "if (a) { var x; } // nolint:hoistguard\n",
	})

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"default", nil, exitOK},
		{"generated", []string{"--generated"}, exitProblems},
		{"no_directives", []string{"--no-directives"}, exitProblems},
		{"exclude", []string{"--generated", "--no-directives", "--exclude=*.js"}, exitOK},
		{"rules", []string{"--generated", "--rules=no-inner-declarations"}, exitProblems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := append([]string{"--no-color", "--jobs=1"}, tt.args...)

			code, stdout, stderr := run(t, append(args, dir)...)
			assert.Equal(t, tt.want, code, "stdout: %s\nstderr: %s", stdout, stderr)
		})
	}
}

func TestLintFailures(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"bad.js":  "var a;\nfunction (\n",
		"good.js": "if (a) { var x; }\n",
	})

	tests := []struct {
		name   string
		args   []string
		stderr string
	}{
		{"syntax_error", []string{dir}, "syntax error"},
		{"missing_path", []string{filepath.Join(dir, "missing")}, "no such file"},
		{"unknown_rule", []string{"--rules=no-var", dir}, "unknown rule"},
		{"unknown_format", []string{"--format=sarif", dir}, "unknown format"},
		{"unknown_source_type", []string{"--source-type=commonjs", dir}, "unknown source type"},
		{"negative_jobs", []string{"--jobs=-1", dir}, "jobs -1"},
		{"unknown_flag", []string{"--fix", dir}, "unknown flag"},
		{"missing_config", []string{"--config", filepath.Join(dir, "missing.toml"), dir}, "missing.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			code, _, stderr := run(t, append([]string{"--no-color"}, tt.args...)...)

			assert.Equal(t, exitFailure, code)
			assert.Contains(t, stderr, tt.stderr)
		})
	}
}

func TestLintSyntaxErrorStillReports(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"bad.js":  "function (\n",
		"good.js": "if (a) { var x; }\n",
	})

	code, stdout, stderr := run(t, "--format=compact", dir)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stdout, "good.js:1:10: Move variable declaration to module root")
	assert.Contains(t, stderr, "bad.js")
}

func TestLintConfigFile(t *testing.T) {
	t.Parallel()

	const configFile = `format = "compact"
generated = true
exclude = ["vendor"]
`

	dir := writeTree(t, map[string]string{
		"config.toml":       configFile,
		"src/gen.js":        "// Code generated by gen. DO NOT EDIT.\nif (a) { var x; }\n",
		"src/vendor/lib.js": "if (a) { var y; }\n",
	})

	config := filepath.Join(dir, "config.toml")
	src := filepath.Join(dir, "src")

	code, stdout, _ := run(t, "--config", config, src)

	require.Equal(t, exitProblems, code)
	assert.Equal(t, filepath.Join(src, "gen.js")+":2:10: Move variable declaration to module root (no-inner-declarations)\n", stdout)

	code, stdout, _ = run(t, "--config", config, "--format=json", "--generated=false", src)

	require.Equal(t, exitOK, code)
	assert.Equal(t, "[]\n", stdout)
}

func TestLintConfigUnknownKey(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"config.toml": "fix = true\n",
		"a.js":        "var a;\n",
	})

	code, _, stderr := run(t, "--config", filepath.Join(dir, "config.toml"), dir)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "unknown configuration key")
}

func TestLintConfigDiscovery(t *testing.T) {
	dir := writeTree(t, map[string]string{
		".hoistguard.toml": "format = \"compact\"\nrules = [\"no-inner-declarations\"]\n",
		"web/app.js":       "while (a) { var x; }\n",
	})

	t.Chdir(filepath.Join(dir, "web"))

	code, stdout, stderr := run(t, "--verbose", "app.js")

	require.Equal(t, exitProblems, code)
	assert.Equal(t, "app.js:1:13: Move variable declaration to module root (no-inner-declarations)\n", stdout)
	assert.Contains(t, stderr, "Loaded configuration")
}

func TestRulesCommand(t *testing.T) {
	t.Parallel()

	code, stdout, _ := run(t, "rules")

	require.Equal(t, exitOK, code)
	assert.Equal(t, "no-inner-declarations  recommended\n", stdout)
}

func TestExplainCommand(t *testing.T) {
	t.Parallel()

	code, stdout, _ := run(t, "explain", "no-inner-declarations")

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Disallows variable or function definitions in nested blocks.")

	code, _, stderr := run(t, "explain", "no-var")

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "unknown rule")
}
