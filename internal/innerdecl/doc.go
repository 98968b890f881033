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

// Package innerdecl implements the no-inner-declarations check.
//
// # Overview
//
// Function declarations and var declarations nested inside blocks have
// historically inconsistent hoisting semantics across JavaScript engines.
// The check reports every such declaration that does not sit directly at
// the root of its governing scope.
//
// # Example
//
//	if (test) {
//	    function doSomething() { }  // Move function declaration to module root
//	}
//
//	function bar() {
//	    if (foo) var a;             // Move variable declaration to function root
//	}
//
// # Architecture
//
// The check runs two strictly sequential passes over a program:
//
//  1. Collect: record the span of every function or var declaration that is
//     an element of a scope root statement list (the program, or the body of
//     a function, method, constructor or block-bodied arrow function).
//  2. Scan: walk the whole tree in source order, tracking the governing scope
//     root, and report every function or var declaration not collected.
//
// let and const declarations are block scoped by construction and never reported.
package innerdecl
