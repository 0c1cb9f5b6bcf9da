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

// Package worker implements the two concurrent roles in the pipeline:
// SourceWorker pumps pages from a Source into a shared channel; SinkWorker
// buffers pages from that channel until a byte threshold, composes a
// payload, and sends it.
package worker

import (
	"context"

	"go.uber.org/zap"

	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxsource"
	"kvx.dev/kvx/runtime/progress"
)

// SourceWorker owns a Source exclusively and feeds its pages into pages.
// It does not close the channel; its caller does once Run returns.
type SourceWorker struct {
	source   kvxsource.Source
	pages    chan<- kvxpage.Page
	log      *zap.Logger
	reporter progress.Reporter
}

// NewSourceWorker constructs a SourceWorker over source, sending pages into
// the given channel. The worker does not own the channel; its caller
// closes pages once Run returns. reporter may be progress.Noop.
func NewSourceWorker(source kvxsource.Source, pages chan<- kvxpage.Page, log *zap.Logger, reporter progress.Reporter) *SourceWorker {
	return &SourceWorker{source: source, pages: pages, log: log, reporter: reporter}
}

// Run pumps pages until end-of-stream or the first error, which it
// returns. It does not close the pages channel; the Supervisor does that
// once every SourceWorker.Run call (there is exactly one) returns.
func (w *SourceWorker) Run(ctx context.Context) error {
	pagesSent := 0
	defer func() {
		w.log.Debug("source worker finished", zap.Int("pages_sent", pagesSent))
	}()

	for {
		page, ok, err := w.source.NextPage(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		pagesSent++
		w.reporter.Add(int64(page.Len()))

		select {
		case w.pages <- page:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
