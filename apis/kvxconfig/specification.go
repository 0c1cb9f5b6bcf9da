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

// Package kvxconfig is the top-level, YAML-tagged configuration tree for a
// kvx run: one Source, one Sink, and the runtime concurrency knobs that
// govern the worker pool between them.
package kvxconfig

import (
	"kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/apis/kvxsource"
)

// Runtime holds the knobs that shape the pipeline's concurrency, independent
// of any particular Source or Sink.
type Runtime struct {
	// QueueCapacity bounds the channel between SourceWorker and the
	// SinkWorker pool.
	QueueCapacity int `yaml:"queue_capacity" mapstructure:"queue_capacity"`

	// SinkParallelism is the number of concurrent SinkWorker goroutines.
	SinkParallelism int `yaml:"sink_parallelism" mapstructure:"sink_parallelism"`
}

// DefaultRuntime returns the spec-mandated defaults.
func DefaultRuntime() Runtime {
	return Runtime{QueueCapacity: 10, SinkParallelism: 1}
}

// WithDefaults fills zero-valued fields with the spec default.
func (r Runtime) WithDefaults() Runtime {
	out := r
	if out.QueueCapacity <= 0 {
		out.QueueCapacity = DefaultRuntime().QueueCapacity
	}
	if out.SinkParallelism <= 0 {
		out.SinkParallelism = DefaultRuntime().SinkParallelism
	}
	return out
}

// Specification is the full, resolved configuration for one run.
type Specification struct {
	Runtime Runtime                  `yaml:"runtime" mapstructure:"runtime"`
	Source  kvxsource.Specification  `yaml:"source" mapstructure:"source"`
	Sink    kvxsink.Specification    `yaml:"sink" mapstructure:"sink"`
}

// WithDefaults returns a copy with every omitted knob filled in, recursing
// into the Source and Sink common blocks.
func (s Specification) WithDefaults() Specification {
	out := s
	out.Runtime = out.Runtime.WithDefaults()
	out.Source.Common = out.Source.Common.WithDefaults()
	out.Sink.Common = out.Sink.Common.WithDefaults()
	return out
}
