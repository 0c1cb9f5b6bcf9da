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

// Package kvxcomposer defines the Composer contract: assembling a buffer of
// raw Pages, via a Transform, into the final Payload bytes in a sink's wire
// format.
package kvxcomposer

import (
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxtransform"
)

// Kind identifies one of the closed set of Composer variants.
type Kind string

const (
	KindNDJSON    Kind = "ndjson"
	KindJSONArray Kind = "json_array"
)

// Composer assembles a buffer of pages into the final payload bytes.
//
// Implementations iterate pages in buffer order, call transform.Apply on
// each, and concatenate the resulting items with variant-specific framing.
// No JSON re-parsing of items is performed; items are concatenated as byte
// sequences.
type Composer interface {
	// Kind returns the canonical composer kind identifier.
	Kind() Kind

	// Compose assembles pages into the final payload. An empty input
	// yields the variant's empty-payload representation (empty string for
	// NDJSON, "[]" for JSONArray).
	Compose(pages []kvxpage.Page, transform kvxtransform.Transform) ([]byte, error)
}
