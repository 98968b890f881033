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

// Package analyzer implements the hoistguard static analysis pass.
//
// # Overview
//
// HoistGuard checks JavaScript sources that a Go package embeds with
// //go:embed and reports function and var declarations that are not placed
// directly in the body of a program or function.
//
// # Example
//
// Given
//
//	//go:embed static
//	var static embed.FS
//
// and static/app.js containing
//
//	if (ready) {
//	    function start() {}  // hoisted out of the block in sloppy mode
//	}
//
// the analyzer reports
//
//	static/app.js:2:5: Move function declaration to module root (no-inner-declarations)
//
// # Suppression
//
// Diagnostics are suppressed by a trailing // nolint:hoistguard comment,
// a // deno-lint-ignore comment on the preceding line or a
// // deno-lint-ignore-file comment before the first statement.
// Generated files are skipped unless -generated is set.
package analyzer
