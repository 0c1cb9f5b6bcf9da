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

// Package transform resolves the (source-kind, sink-kind) pair to a
// concrete Transform at startup. The resolver fails loudly on an
// unsupported pairing; it never silently falls back.
package transform

import (
	"fmt"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/apis/kvxsource"
	"kvx.dev/kvx/apis/kvxtransform"
	"kvx.dev/kvx/runtime/transform/passthrough"
	"kvx.dev/kvx/runtime/transform/rallytobulk"
)

type pair struct {
	source kvxsource.Kind
	sink   kvxsink.Kind
}

var table = map[pair]kvxtransform.Transform{
	{kvxsource.KindFile, kvxsink.KindBulkHTTP}:        rallytobulk.New(),
	{kvxsource.KindObjectStore, kvxsink.KindBulkHTTP}: rallytobulk.New(),
	{kvxsource.KindFile, kvxsink.KindFile}:            passthrough.New(),
	{kvxsource.KindInMemory, kvxsink.KindInMemory}:    passthrough.New(),
	{kvxsource.KindClusterScroll, kvxsink.KindFile}:   passthrough.New(),
}

// Resolve returns the Transform for the given source/sink kind pairing, or
// a ResolveError if the pairing is not recognized.
func Resolve(sourceKind kvxsource.Kind, sinkKind kvxsink.Kind) (kvxtransform.Transform, error) {
	t, ok := table[pair{sourceKind, sinkKind}]
	if !ok {
		return nil, kvxerrors.ResolveError(
			fmt.Sprintf("no transform registered for source=%q sink=%q", sourceKind, sinkKind), nil)
	}
	return t, nil
}
