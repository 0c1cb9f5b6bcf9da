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

package worker

import (
	"context"

	"go.uber.org/zap"

	"kvx.dev/kvx/apis/kvxcomposer"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/apis/kvxtransform"
	"kvx.dev/kvx/runtime/page"
)

// SinkWorker owns a Sink, a Transform, a Composer, and a PayloadBuffer
// exclusively. It consumes pages from a shared channel, buffers them until
// the byte threshold is crossed, then flushes.
type SinkWorker struct {
	pages     <-chan kvxpage.Page
	sink      kvxsink.Sink
	transform kvxtransform.Transform
	composer  kvxcomposer.Composer

	maxRequestSizeBytes int
	buffer               *page.Buffer
	log                  *zap.Logger
}

// NewSinkWorker constructs a SinkWorker reading from pages.
func NewSinkWorker(
	pages <-chan kvxpage.Page,
	sink kvxsink.Sink,
	transform kvxtransform.Transform,
	composer kvxcomposer.Composer,
	maxRequestSizeBytes int,
	log *zap.Logger,
) *SinkWorker {
	return &SinkWorker{
		pages:                pages,
		sink:                 sink,
		transform:            transform,
		composer:             composer,
		maxRequestSizeBytes:  maxRequestSizeBytes,
		buffer:               page.NewBuffer(),
		log:                  log,
	}
}

// Run consumes pages until the channel closes, flushing whenever the
// buffer crosses the byte threshold, then performs a final flush and
// closes the Sink exactly once.
func (w *SinkWorker) Run(ctx context.Context) error {
	for {
		select {
		case p, ok := <-w.pages:
			if !ok {
				return w.finish(ctx)
			}
			if !w.buffer.Empty() && w.buffer.ShouldFlush(p.Len(), w.maxRequestSizeBytes) {
				if err := w.flush(ctx); err != nil {
					return err
				}
			}
			w.buffer.Add(p)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *SinkWorker) finish(ctx context.Context) error {
	if !w.buffer.Empty() {
		if err := w.flush(ctx); err != nil {
			return err
		}
	}
	if err := w.sink.Close(ctx); err != nil {
		return err
	}
	return nil
}

func (w *SinkWorker) flush(ctx context.Context) error {
	payload, err := w.composer.Compose(w.buffer.Pages(), w.transform)
	if err != nil {
		return err
	}

	w.buffer.Reset()

	if len(payload) == 0 || string(payload) == "[]" {
		return nil
	}

	w.log.Debug("flushing payload", zap.String("sink", w.sink.Name()), zap.Int("bytes", len(payload)))
	return w.sink.Send(ctx, payload)
}
