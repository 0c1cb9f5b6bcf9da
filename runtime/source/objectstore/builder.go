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

package objectstore

import (
	"context"

	"kvx.dev/kvx/apis/kvxsource"
)

// Builder constructs ObjectStore sources, performing the HEAD/GET
// preflight during Build.
type Builder struct{}

var _ kvxsource.Builder = Builder{}

// Kind returns kvxsource.KindObjectStore.
func (Builder) Kind() kvxsource.Kind { return kvxsource.KindObjectStore }

// Build resolves credentials from the environment and opens the object.
func (Builder) Build(ctx context.Context, spec kvxsource.Specification) (kvxsource.Source, error) {
	return Open(ctx, spec)
}
