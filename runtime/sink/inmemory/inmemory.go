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

// Package inmemory implements the InMemory Sink variant: an ordered,
// mutex-protected sequence of payloads held in process memory, for
// assertions in tests.
package inmemory

import (
	"context"
	"fmt"
	"sync"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxsink"
)

// Sink appends each sent payload to an in-memory slice.
type Sink struct {
	mu       sync.Mutex
	payloads []string
	closed   bool
}

var _ kvxsink.Sink = (*Sink)(nil)

// New constructs an empty InMemory sink.
func New() *Sink {
	return &Sink{}
}

// Name identifies this sink for diagnostics.
func (s *Sink) Name() string {
	return "in_memory"
}

// Send appends payload to the held sequence.
func (s *Sink) Send(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kvxerrors.SinkSendError("send after close", fmt.Errorf("in_memory sink is closed"))
	}
	s.payloads = append(s.payloads, string(payload))
	return nil
}

// Close marks the sink closed; further Send calls are rejected.
func (s *Sink) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Payloads returns a copy of every payload sent so far, in send order.
func (s *Sink) Payloads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.payloads))
	copy(out, s.payloads)
	return out
}
