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

package analyzer

import (
	"log/slog"

	"fillmore-labs.com/hoistguard/internal/config"
	"fillmore-labs.com/hoistguard/internal/jsast"
	"fillmore-labs.com/hoistguard/internal/run"
)

// Option configures specific behavior of a [New] hoistguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithDirectives is an [Option] to configure whether suppression comments are honored.
func WithDirectives(directives bool) Option { return directivesOption{directives: directives} }

type directivesOption struct{ directives bool }

func (o directivesOption) apply(r *run.Options) {
	r.Behavior.Set(config.Directives, o.directives)
}

func (o directivesOption) LogAttr() slog.Attr {
	return slog.Bool("directives", o.directives)
}

// SourceType selects how embedded JavaScript is parsed.
type SourceType = jsast.Kind

// Source types accepted by [WithSourceType].
const (
	SourceAuto   SourceType = jsast.Auto
	SourceScript SourceType = jsast.Script
	SourceModule SourceType = jsast.Module
)

// ParseSourceType parses "auto", "script" or "module".
func ParseSourceType(s string) (SourceType, error) { return jsast.ParseKind(s) }

// WithSourceType is an [Option] to force embedded sources to be parsed as script or module.
func WithSourceType(sourceType SourceType) Option { return sourceTypeOption{sourceType: sourceType} }

type sourceTypeOption struct{ sourceType SourceType }

func (o sourceTypeOption) apply(r *run.Options) {
	r.SourceType = o.sourceType
}

func (o sourceTypeOption) LogAttr() slog.Attr {
	return slog.String("source-type", o.sourceType.String())
}
