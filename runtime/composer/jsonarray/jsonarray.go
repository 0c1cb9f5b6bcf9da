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

// Package jsonarray implements the JSONArray Composer variant: items
// joined by commas inside a single "[" / "]" envelope, as the InMemory
// sink's fixture consumers expect.
package jsonarray

import (
	"bytes"

	"kvx.dev/kvx/apis/kvxcomposer"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxtransform"
)

// Composer wraps items in a single JSON array, concatenated as raw bytes
// with no re-parsing.
type Composer struct{}

var _ kvxcomposer.Composer = Composer{}

// New constructs a JSONArray composer.
func New() Composer { return Composer{} }

// Kind returns kvxcomposer.KindJSONArray.
func (Composer) Kind() kvxcomposer.Kind { return kvxcomposer.KindJSONArray }

// Compose transforms each page and joins the resulting items with commas
// inside "[" / "]". Empty input yields "[]".
func (Composer) Compose(pages []kvxpage.Page, transform kvxtransform.Transform) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	first := true
	for _, p := range pages {
		items, err := transform.Apply(p)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			buf.Write(item.Bytes())
		}
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}
