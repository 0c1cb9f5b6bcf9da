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

// Package kvxsink defines the Sink contract: the destination for an
// assembled Payload, plus its closed set of variants (File, InMemory,
// BulkHttp).
package kvxsink

import "context"

// Kind identifies one of the closed set of Sink variants.
type Kind string

const (
	KindFile     Kind = "file"
	KindInMemory Kind = "in_memory"
	KindBulkHTTP Kind = "bulk_http"
)

// Sink performs exactly one act of I/O per assembled payload, plus a
// terminal finalization step.
//
// A Sink does not buffer across Send calls except as required by the
// underlying transport (an HTTP connection pool, a buffered file writer).
// Close MUST be called exactly once; sending after Close is a contract
// violation.
type Sink interface {
	// Name returns a human-friendly identifier, used for diagnostics and
	// logging.
	Name() string

	// Send transmits payload atomically from the sink's perspective. A
	// partial send is reported as an error.
	Send(ctx context.Context, payload []byte) error

	// Close flushes and releases resources. It must be called exactly
	// once, after which Send must not be called again.
	Close(ctx context.Context) error
}

// Builder constructs a Sink from a Specification.
type Builder interface {
	// Kind returns the canonical sink kind identifier.
	Kind() Kind

	// Build constructs a Sink for the given configuration. Implementations
	// may perform preflight I/O (connectivity checks) during Build; a
	// failure here is fatal at startup, before any worker is spawned.
	Build(ctx context.Context, spec Specification) (Sink, error)
}
