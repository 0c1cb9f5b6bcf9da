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

package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/apis/kvxsource"
	"kvx.dev/kvx/runtime/composer"
	"kvx.dev/kvx/runtime/config"
	"kvx.dev/kvx/runtime/logging"
	"kvx.dev/kvx/runtime/progress"
	"kvx.dev/kvx/runtime/sink"
	"kvx.dev/kvx/runtime/source"
	"kvx.dev/kvx/runtime/supervisor"
	"kvx.dev/kvx/runtime/transform"
)

func runMigration(ctx context.Context, configFile string, verbose bool) error {
	log, err := logging.New(verbose)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	spec, err := config.Load(configFile)
	if err != nil {
		return err
	}

	src, err := source.Build(ctx, spec.Source)
	if err != nil {
		return err
	}
	defer src.Close(ctx) //nolint:errcheck

	xform, err := transform.Resolve(spec.Source.Kind, spec.Sink.Kind)
	if err != nil {
		return err
	}
	cmp, err := composer.Resolve(spec.Sink.Kind)
	if err != nil {
		return err
	}

	reporter := newReporter(src)
	defer reporter.Close() //nolint:errcheck

	sinkSpec := spec.Sink
	newSink := func(ctx context.Context) (kvxsink.Sink, error) {
		return sink.Build(ctx, sinkSpec)
	}

	log.Info("starting migration",
		zap.String("source_kind", string(spec.Source.Kind)),
		zap.String("sink_kind", string(spec.Sink.Kind)),
		zap.Int("sink_parallelism", spec.Runtime.SinkParallelism),
		zap.Int("queue_capacity", spec.Runtime.QueueCapacity),
	)

	if err := supervisor.Run(ctx, *spec, src, newSink, xform, cmp, log, reporter); err != nil {
		log.Error("migration failed", zap.Error(err))
		return err
	}

	log.Info("migration complete")
	return nil
}

// newReporter drives a determinate progress bar when src reports a known
// total size, and a no-op reporter otherwise.
func newReporter(src kvxsource.Source) progress.Reporter {
	sized, ok := src.(kvxsource.Sizer)
	if !ok {
		return progress.Noop
	}
	total, known := sized.TotalBytes()
	if !known {
		return progress.Noop
	}
	return progress.New(os.Stderr, total, known)
}
