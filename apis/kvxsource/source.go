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

// Package kvxsource defines the Source contract: a lazy, finite sequence of
// raw Pages pulled from some origin (file, object store, in-memory fixture,
// live cluster).
package kvxsource

import (
	"context"

	"kvx.dev/kvx/apis/kvxpage"
)

// Kind identifies one of the closed set of Source variants.
type Kind string

const (
	KindFile          Kind = "file"
	KindInMemory      Kind = "in_memory"
	KindObjectStore   Kind = "object_store"
	KindClusterScroll Kind = "cluster_scroll"
)

// Source produces a lazy, finite sequence of raw pages.
//
// Sources are stateful (position cursor, open handle) and require
// exclusive access: a Source MUST only be driven by one goroutine at a
// time. A Source reports end-of-stream exactly once; subsequent calls to
// NextPage after ok==false are a contract violation.
type Source interface {
	// NextPage returns the next page of the stream. ok==false and err==nil
	// signals clean end-of-stream. A non-nil error is fatal; the caller
	// must not call NextPage again.
	NextPage(ctx context.Context) (page kvxpage.Page, ok bool, err error)

	// Close releases any resources held by the source (file handles,
	// network connections). It is safe to call Close after end-of-stream
	// or after an error from NextPage.
	Close(ctx context.Context) error
}

// Sizer is optionally implemented by sources that can report their total
// size up front, for progress reporting. Implementations that cannot
// determine a total size (InMemory, ClusterScroll) do not implement it.
type Sizer interface {
	// TotalBytes returns the known total size of the source, and whether
	// that total is known at all.
	TotalBytes() (total int64, known bool)
}

// Builder constructs a Source from its source Specification alone; the
// sink kind is not passed to it.
type Builder interface {
	// Kind returns the canonical source kind identifier.
	Kind() Kind

	// Build constructs a Source from the given configuration.
	Build(ctx context.Context, spec Specification) (Source, error)
}
