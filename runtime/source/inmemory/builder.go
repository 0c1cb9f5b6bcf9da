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

	"kvx.dev/kvx/apis/kvxsource"
)

// Builder constructs InMemory sources. The Specification is ignored; the
// variant carries no configuration.
type Builder struct{}

var _ kvxsource.Builder = Builder{}

// Kind returns kvxsource.KindInMemory.
func (Builder) Kind() kvxsource.Kind { return kvxsource.KindInMemory }

// Build returns a fresh fixture source.
func (Builder) Build(_ context.Context, _ kvxsource.Specification) (kvxsource.Source, error) {
	return New(), nil
}
