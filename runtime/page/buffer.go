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

// Package page implements the PayloadBuffer entity: the ordered run of
// pages a SinkWorker accumulates between flushes.
package page

import "kvx.dev/kvx/apis/kvxpage"

// Epsilon is the fixed flush headroom, accounting for worst-case payload
// expansion when a transform prepends per-document framing (e.g. bulk
// action lines).
const Epsilon = 64 * 1024

// Buffer is an ordered run of pages plus a running byte count. It is owned
// exclusively by one SinkWorker; not safe for concurrent use.
type Buffer struct {
	pages []kvxpage.Page
	bytes int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Add appends a page and updates the running byte count.
func (b *Buffer) Add(p kvxpage.Page) {
	b.pages = append(b.pages, p)
	b.bytes += p.Len()
}

// Pages returns the buffered pages in receive order.
func (b *Buffer) Pages() []kvxpage.Page {
	return b.pages
}

// Bytes returns the running byte count across all buffered pages.
func (b *Buffer) Bytes() int {
	return b.bytes
}

// Empty reports whether the buffer currently holds no pages.
func (b *Buffer) Empty() bool {
	return len(b.pages) == 0
}

// ShouldFlush reports whether adding a page of incomingBytes would cross
// the flush threshold for the given max request size, per the Epsilon
// headroom invariant: cumulative_bytes + incomingBytes + Epsilon >= max.
// Callers check this BEFORE adding the incoming page, so the buffer is
// flushed before its contribution exceeds the limit, not after.
func (b *Buffer) ShouldFlush(incomingBytes, maxRequestSizeBytes int) bool {
	return b.bytes+incomingBytes+Epsilon >= maxRequestSizeBytes
}

// Reset clears the buffer after a flush, releasing the page slice.
func (b *Buffer) Reset() {
	b.pages = nil
	b.bytes = 0
}
