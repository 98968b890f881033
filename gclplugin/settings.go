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

package gclplugin

import (
	"fmt"

	hoistguard "fillmore-labs.com/hoistguard/analyzer"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Generated enables checks of generated JavaScript files.
	Generated *bool `json:"generated,omitzero"`
	// Directives enables nolint and deno-lint-ignore suppression comments.
	Directives *bool `json:"directives,omitzero"`
	// SourceType forces embedded sources to be parsed as "auto", "module" or "script".
	SourceType *string `json:"source-type,omitzero"`
}

// Options converts [Settings] into a list of [hoistguard.Option] for the hoistguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]hoistguard.Option, error) {
	var opts []hoistguard.Option

	opts = appendOption(opts, s.Generated, hoistguard.WithGenerated)
	opts = appendOption(opts, s.Directives, hoistguard.WithDirectives)

	if s.SourceType != nil {
		sourceType, err := hoistguard.ParseSourceType(*s.SourceType)
		if err != nil {
			return nil, fmt.Errorf("hoistguard settings: %w", err)
		}

		opts = append(opts, hoistguard.WithSourceType(sourceType))
	}

	return opts, nil
}

// appendOption appends a non-nil setting to a [hoistguard.Option] list.
func appendOption[T any](opts []hoistguard.Option, value *T, constructor func(T) hoistguard.Option) []hoistguard.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
