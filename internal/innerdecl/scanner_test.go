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

package innerdecl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/hoistguard/internal/innerdecl"
	"fillmore-labs.com/hoistguard/internal/jsast"
	"fillmore-labs.com/hoistguard/internal/testsource"
)

func TestCheckValid(t *testing.T) {
	t.Parallel()

	tests := []string{
		"function doSomething() { }",
		"function doSomething() { function somethingElse() { } }",
		"(function() { function doSomething() { } }());",
		"function decl() { var fn = function expr() { }; }",
		"function decl(arg) { var fn; if (arg) { fn = function() { }; } }",
		"var x = {doSomething() {function doSomethingElse() {}}}",
		"function decl(arg) { var fn; if (arg) { fn = function expr() { }; } }",
		"if (test) { let x = 1; }",
		"if (test) { const x = 1; }",
		"var foo;",
		"var foo = 42;",
		"function doSomething() { var foo; }",
		"(function() { var foo; }());",
		"foo(() => { function bar() { } });",
		"var fn = () => {var foo;}",
		"var x = {doSomething() {var foo;}}",
		"export var foo;",
		"export function bar() {}",
		"export default function baz() {}",
		"exports.foo = () => {}",
		"exports.foo = function(){}",
		"module.exports = function foo(){}",
		"class Test { constructor() { function test() {} } }",
		"class Test { method() { function test() {} } }",
		"class Test { get value() { var v; return v; } }",
		"function* gen() { var x; yield x; }",
		"async function run() { var x = await y; }",
		"for (let i = 0; i < 1; i++) { let x; }",
		"for (const k of list) {}",
		"while (test) { let foo; }",
		"",
	}

	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			t.Parallel()

			prog := testsource.Parse(t, src)

			if got := Check(prog); len(got) != 0 {
				t.Errorf("Check(%q) = %v, want no violations", src, got)
			}
		})
	}
}

type finding struct {
	Column int
	Kind   DeclarationKind
	Root   ScopeRootKind
}

func TestCheckInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want []finding
	}{
		// function declarations
		{"if (test) { function doSomething() { } }", []finding{{13, FunctionDeclaration, ModuleRoot}}},
		{"if (foo)  function f(){} ", []finding{{11, FunctionDeclaration, ModuleRoot}}},
		{"function bar() { if (foo) function f(){}; }", []finding{{27, FunctionDeclaration, FunctionRoot}}},
		{"function doSomething() { do { function somethingElse() { } } while (test); }", []finding{{31, FunctionDeclaration, FunctionRoot}}},
		{"(function() { if (test) { function doSomething() { } } }());", []finding{{27, FunctionDeclaration, FunctionRoot}}},
		{"class A { constructor() { if (x) { function f() {} } } }", []finding{{36, FunctionDeclaration, FunctionRoot}}},
		{"{ function* gen() {} }", []finding{{3, FunctionDeclaration, ModuleRoot}}},

		// var declarations
		{"if (foo) var a; ", []finding{{10, VariableDeclaration, ModuleRoot}}},
		{"if (foo) /* some comments */ var a; ", []finding{{30, VariableDeclaration, ModuleRoot}}},
		{"function bar() { if (foo) var a; }", []finding{{27, VariableDeclaration, FunctionRoot}}},
		{"if (foo){ var a; }", []finding{{11, VariableDeclaration, ModuleRoot}}},
		{"while (test) { var foo; }", []finding{{16, VariableDeclaration, ModuleRoot}}},
		{"function doSomething() { if (test) { var foo = 42; } }", []finding{{38, VariableDeclaration, FunctionRoot}}},
		{"(function() { if (test) { var foo; } }());", []finding{{27, VariableDeclaration, FunctionRoot}}},
		{"const doSomething = () => { if (test) { var foo = 42; } }", []finding{{41, VariableDeclaration, FunctionRoot}}},
		{"for (var i = 0; i < 1; i++) {}", []finding{{6, VariableDeclaration, ModuleRoot}}},
		{"for (var k in obj) {}", []finding{{6, VariableDeclaration, ModuleRoot}}},
		{"function f() { for (var v of list) {} }", []finding{{21, VariableDeclaration, FunctionRoot}}},
		{"export default function () { if (x) var y; }", []finding{{37, VariableDeclaration, FunctionRoot}}},

		// both
		{"if (foo){ function f(){ if(bar){ var a; } } }", []finding{
			{11, FunctionDeclaration, ModuleRoot},
			{34, VariableDeclaration, FunctionRoot},
		}},
		{"if (foo) function f(){ if(bar) var a; } ", []finding{
			{10, FunctionDeclaration, ModuleRoot},
			{32, VariableDeclaration, FunctionRoot},
		}},
		{"if (a) { var x; } if (b) { var y; }", []finding{
			{10, VariableDeclaration, ModuleRoot},
			{28, VariableDeclaration, ModuleRoot},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			prog := testsource.Parse(t, tt.src)

			violations := Check(prog)

			got := make([]finding, 0, len(violations))
			for _, v := range violations {
				got = append(got, finding{Column: prog.Position(v.Span.Start).Column, Kind: v.Kind, Root: v.Root})
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Check(%q) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestScanRootSpan(t *testing.T) {
	t.Parallel()

	const src = "function bar() { if (foo) var a; }"

	prog := testsource.Parse(t, src)

	violations := Check(prog)
	if len(violations) != 1 {
		t.Fatalf("Got %d violations, want 1", len(violations))
	}

	v := violations[0]

	if got, want := prog.Text(v.Span), "var a;"; got != want {
		t.Errorf("Declaration = %q, want %q", got, want)
	}

	if got, want := prog.Text(v.RootSpan), "{ if (foo) var a; }"; got != want {
		t.Errorf("Root = %q, want %q", got, want)
	}

	if got, want := v.Message(), "Move variable declaration to function root"; got != want {
		t.Errorf("Message() = %q, want %q", got, want)
	}
}

func TestScanConsultsValidSet(t *testing.T) {
	t.Parallel()

	const src = "var a; if (x) { var b; function f() { var c; } }"

	prog := testsource.Parse(t, src)

	// Without a valid set, every var and function declaration is reported.
	got := testsource.Texts(prog, spans(Scan(prog, ValidSet{})))
	want := []string{"var a;", "var b;", "function f() { var c; }", "var c;"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan() without valid set mismatch (-want +got):\n%s", diff)
	}

	got = testsource.Texts(prog, spans(Scan(prog, CollectValid(prog))))
	want = []string{"var b;", "function f() { var c; }"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckIdempotent(t *testing.T) {
	t.Parallel()

	const src = "if (foo){ function f(){ if(bar){ var a; } } }\nwhile (x) { var y; }"

	prog := testsource.Parse(t, src)

	first, second := Check(prog), Check(prog)

	if len(first) != 3 {
		t.Errorf("Got %d violations, want 3", len(first))
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Repeated Check() mismatch (-first +second):\n%s", diff)
	}
}

func TestViolationMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind DeclarationKind
		root ScopeRootKind
		want string
	}{
		{FunctionDeclaration, ModuleRoot, "Move function declaration to module root"},
		{FunctionDeclaration, FunctionRoot, "Move function declaration to function root"},
		{VariableDeclaration, ModuleRoot, "Move variable declaration to module root"},
		{VariableDeclaration, FunctionRoot, "Move variable declaration to function root"},
	}

	for _, tt := range tests {
		v := Violation{Kind: tt.kind, Root: tt.root}
		if got := v.Message(); got != tt.want {
			t.Errorf("Message() = %q, want %q", got, tt.want)
		}
	}
}

func spans(violations []Violation) []jsast.Span {
	s := make([]jsast.Span, len(violations))
	for i, v := range violations {
		s[i] = v.Span
	}

	return s
}
