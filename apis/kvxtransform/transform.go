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

// Package kvxtransform defines the Transform contract: mapping one raw Page
// to an ordered sequence of Items in the sink's per-document wire format.
package kvxtransform

import "kvx.dev/kvx/apis/kvxpage"

// Kind identifies one of the closed set of Transform variants.
type Kind string

const (
	KindPassthrough Kind = "passthrough"
	KindRallyToBulk Kind = "rally_to_bulk"
)

// Transform maps one raw page to an ordered sequence of items.
//
// Implementations MUST preserve the order of source documents within the
// page and MUST NOT perform external I/O. Transforms are zero-state and
// synchronous: they never suspend.
type Transform interface {
	// Kind returns the canonical transform kind identifier.
	Kind() Kind

	// Apply maps a page to its items, in source order.
	Apply(page kvxpage.Page) ([]kvxpage.Item, error)
}
