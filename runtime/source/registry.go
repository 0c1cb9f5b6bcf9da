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

// Package source is the dispatch point from a resolved kvxsource.Kind to
// the concrete Source implementation, wired together at init time.
package source

import (
	"context"

	asource "kvx.dev/kvx/apis/kvxsource"
	"kvx.dev/kvx/runtime/registry"
	"kvx.dev/kvx/runtime/source/clusterscroll"
	"kvx.dev/kvx/runtime/source/file"
	"kvx.dev/kvx/runtime/source/inmemory"
	"kvx.dev/kvx/runtime/source/objectstore"
)

// Registry is the global source builder registry, case-insensitive for
// convenience across YAML/env configuration.
var Registry = registry.New[asource.Source, asource.Specification](registry.WithCaseFoldLower())

func init() {
	register(file.Builder{})
	register(inmemory.Builder{})
	register(objectstore.Builder{})
	register(clusterscroll.Builder{})
}

func register(b asource.Builder) {
	registry.MustRegister(Registry, registry.Key{Kind: string(b.Kind())}, b.Build)
}

// Build constructs a Source for spec, dispatching on spec.Kind.
func Build(ctx context.Context, spec asource.Specification) (asource.Source, error) {
	return Registry.Build(ctx, registry.Key{Kind: string(spec.Kind)}, spec)
}
