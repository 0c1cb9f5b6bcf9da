/*
   Copyright 2025 The kvx Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package progress renders migration progress to the terminal, backed by
// github.com/schollz/progressbar/v3. A Source that knows its total size up
// front drives a determinate bar; one that doesn't drives an indeterminate
// spinner.
package progress

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// Reporter is the narrow surface workers drive progress through, so
// runtime/worker need not import progressbar directly.
type Reporter interface {
	// SetTotal fixes the bar's denominator once a source reports a known
	// size. It is a no-op once a total is set, whether by an earlier
	// SetTotal call or by New with known=true.
	SetTotal(bytes int64)

	// Add advances the bar by the given number of bytes.
	Add(bytes int64)

	// Close finalizes rendering.
	Close() error
}

type bar struct {
	b         *progressbar.ProgressBar
	haveTotal bool
}

var _ Reporter = (*bar)(nil)

// New constructs a Reporter writing to w. If total is known, the bar is
// determinate from the start; otherwise it begins as an indeterminate
// spinner until SetTotal is called.
func New(w io.Writer, total int64, known bool) Reporter {
	if !known {
		total = -1
	}
	b := progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("migrating"),
		progressbar.OptionShowBytes(true),
		progressbar.OptionThrottle(100),
	)
	return &bar{b: b, haveTotal: known}
}

func (r *bar) SetTotal(bytes int64) {
	if r.haveTotal {
		return
	}
	r.haveTotal = true
	r.b.ChangeMax64(bytes)
}

func (r *bar) Add(bytes int64) {
	_ = r.b.Add64(bytes)
}

func (r *bar) Close() error {
	return r.b.Close()
}

// Noop is a Reporter that discards all progress, used when progress
// reporting is disabled.
var Noop Reporter = noopReporter{}

type noopReporter struct{}

func (noopReporter) SetTotal(int64)  {}
func (noopReporter) Add(int64)       {}
func (noopReporter) Close() error    { return nil }
