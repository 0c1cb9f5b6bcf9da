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

// Package sink is the dispatch point from a resolved kvxsink.Kind to the
// concrete Sink implementation, wired together at init time.
package sink

import (
	"context"

	asink "kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/runtime/registry"
	"kvx.dev/kvx/runtime/sink/bulkhttp"
	"kvx.dev/kvx/runtime/sink/file"
	"kvx.dev/kvx/runtime/sink/inmemory"
)

// Registry is the global sink builder registry, case-insensitive for
// convenience across YAML/env configuration.
var Registry = registry.New[asink.Sink, asink.Specification](registry.WithCaseFoldLower())

func init() {
	register(file.Builder{})
	register(inmemory.Builder{})
	register(bulkhttp.Builder{})
}

func register(b asink.Builder) {
	registry.MustRegister(Registry, registry.Key{Kind: string(b.Kind())}, b.Build)
}

// Build constructs a Sink for spec, dispatching on spec.Kind.
func Build(ctx context.Context, spec asink.Specification) (asink.Sink, error) {
	return Registry.Build(ctx, registry.Key{Kind: string(spec.Kind)}, spec)
}
