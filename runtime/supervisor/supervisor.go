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

// Package supervisor constructs the SourceWorker and the SinkWorker pool
// sharing one bounded channel, runs them concurrently, and joins on all of
// them before reporting the first error encountered.
//
// Deliberately not built on errgroup: errgroup's default Group cancels its
// context and returns on the first error, which would stop other
// SinkWorkers mid-flush. The spec requires every worker to run to
// completion regardless of a sibling's failure, so join-then-report is
// hand-rolled with a WaitGroup and a mutex instead.
package supervisor

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"kvx.dev/kvx/apis/kvxcomposer"
	"kvx.dev/kvx/apis/kvxconfig"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/apis/kvxsource"
	"kvx.dev/kvx/apis/kvxtransform"
	"kvx.dev/kvx/runtime/progress"
	"kvx.dev/kvx/runtime/worker"
)

// SinkFactory builds one independent Sink instance per SinkWorker. Each
// worker owns its Sink exclusively; sinks that hold shared state (the
// InMemory sink under test) are expected to coordinate internally.
type SinkFactory func(ctx context.Context) (kvxsink.Sink, error)

// Run constructs one SourceWorker and spec.Runtime.SinkParallelism
// SinkWorkers sharing a channel of capacity spec.Runtime.QueueCapacity,
// spawns them concurrently, waits for all of them to finish, and returns
// the first error encountered (nil if every worker finished cleanly).
func Run(
	ctx context.Context,
	spec kvxconfig.Specification,
	src kvxsource.Source,
	newSink SinkFactory,
	transform kvxtransform.Transform,
	composer kvxcomposer.Composer,
	log *zap.Logger,
	reporter progress.Reporter,
) error {
	runtime := spec.Runtime.WithDefaults()
	pages := make(chan kvxpage.Page, runtime.QueueCapacity)

	// sourceCtx is cancelled (independent of ctx's own lifetime) if every
	// SinkFactory call fails below, so the SourceWorker unblocks from its
	// channel send and returns instead of leaking forever with no reader.
	sourceCtx, cancelSource := context.WithCancel(ctx)
	defer cancelSource()

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(pages)
		sw := worker.NewSourceWorker(src, pages, log, reporter)
		record(sw.Run(sourceCtx))
	}()

	maxRequestSizeBytes := spec.Sink.Common.WithDefaults().MaxRequestSizeBytes
	sinksBuilt := 0
	for i := 0; i < runtime.SinkParallelism; i++ {
		sink, err := newSink(ctx)
		if err != nil {
			record(err)
			continue
		}
		sinksBuilt++

		wg.Add(1)
		go func(sink kvxsink.Sink) {
			defer wg.Done()
			sw := worker.NewSinkWorker(pages, sink, transform, composer, maxRequestSizeBytes, log)
			record(sw.Run(ctx))
		}(sink)
	}
	if sinksBuilt == 0 {
		cancelSource()
	}

	wg.Wait()
	return firstErr
}
