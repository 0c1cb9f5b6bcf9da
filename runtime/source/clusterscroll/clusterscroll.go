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

// Package clusterscroll is a reserved Source variant for keyset/search-after
// pagination against an Elasticsearch-compatible cluster. It satisfies the
// Source contract so the (source-kind, sink-kind) resolver can name it, but
// the paging algorithm itself is not implemented.
package clusterscroll

import (
	"context"
	"fmt"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxsource"
)

// Source is the reserved extension point: NextPage returns a SourceIOError
// naming the variant as unimplemented, and Close is a no-op.
type Source struct{}

var _ kvxsource.Source = Source{}

// New constructs the stub source.
func New() Source { return Source{} }

// NextPage always fails; cluster scroll paging is not implemented.
func (Source) NextPage(_ context.Context) (kvxpage.Page, bool, error) {
	return nil, false, kvxerrors.SourceIOError("cluster_scroll source is not implemented", fmt.Errorf("reserved extension point"))
}

// Close is a no-op.
func (Source) Close(_ context.Context) error { return nil }
