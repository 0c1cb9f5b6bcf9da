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

// Package passthrough implements the Passthrough Transform variant: used
// when source and sink already share a wire format.
package passthrough

import (
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxtransform"
)

// Transform returns a single item borrowing the entire page, unmodified.
type Transform struct{}

var _ kvxtransform.Transform = Transform{}

// New constructs a Passthrough transform.
func New() Transform { return Transform{} }

// Kind returns kvxtransform.KindPassthrough.
func (Transform) Kind() kvxtransform.Kind { return kvxtransform.KindPassthrough }

// Apply returns the whole page as one borrowed item.
func (Transform) Apply(page kvxpage.Page) ([]kvxpage.Item, error) {
	if len(page) == 0 {
		return nil, nil
	}
	return []kvxpage.Item{kvxpage.BorrowedItem(page)}, nil
}
