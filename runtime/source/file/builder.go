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

package file

import (
	"context"

	"kvx.dev/kvx/apis/kvxsource"
)

// Builder constructs File sources from a resolved Specification.
type Builder struct{}

var _ kvxsource.Builder = Builder{}

// Kind returns kvxsource.KindFile.
func (Builder) Kind() kvxsource.Kind { return kvxsource.KindFile }

// Build opens the configured file.
func (Builder) Build(_ context.Context, spec kvxsource.Specification) (kvxsource.Source, error) {
	return Open(spec.File.FileName, spec.Common)
}
