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

package inmemory

import (
	"context"

	"kvx.dev/kvx/apis/kvxsink"
)

// Builder constructs InMemory sinks. The Specification carries no
// variant-specific configuration.
type Builder struct{}

var _ kvxsink.Builder = Builder{}

// Kind returns kvxsink.KindInMemory.
func (Builder) Kind() kvxsink.Kind { return kvxsink.KindInMemory }

// Build returns a fresh in-memory sink.
func (Builder) Build(_ context.Context, _ kvxsink.Specification) (kvxsink.Sink, error) {
	return New(), nil
}
