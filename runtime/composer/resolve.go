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

// Package composer resolves a sink kind to its concrete Composer at
// startup.
package composer

import (
	"fmt"

	"kvx.dev/kvx/apis/kvxcomposer"
	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/runtime/composer/jsonarray"
	"kvx.dev/kvx/runtime/composer/ndjson"
)

var table = map[kvxsink.Kind]kvxcomposer.Composer{
	kvxsink.KindBulkHTTP: ndjson.New(),
	kvxsink.KindFile:     ndjson.New(),
	kvxsink.KindInMemory: jsonarray.New(),
}

// Resolve returns the Composer registered for sinkKind, or a ResolveError
// if none is registered.
func Resolve(sinkKind kvxsink.Kind) (kvxcomposer.Composer, error) {
	c, ok := table[sinkKind]
	if !ok {
		return nil, kvxerrors.ResolveError(fmt.Sprintf("no composer registered for sink=%q", sinkKind), nil)
	}
	return c, nil
}
