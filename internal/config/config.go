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

// Flags represents behavioral options of the hoistguard checks.
type Flags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated Flags = 1 << iota

	// Directives specifies whether suppression comments in the source are honored.
	Directives
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[Flags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask(Directives)
}
