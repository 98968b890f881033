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

package report

import (
	"bufio"
	"fmt"
	"io"

	"fillmore-labs.com/hoistguard/internal/lint"
)

func writeCompact(w io.Writer, results []lint.Result) error {
	b := bufio.NewWriter(w)

	for _, r := range results {
		for _, f := range r.Findings {
			_, _ = fmt.Fprintf(b, "%s:%s: %s (%s)\n", r.File, f.Start, f.Message, f.Code)
		}
	}

	return b.Flush()
}
