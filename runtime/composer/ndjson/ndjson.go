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

// Package ndjson implements the NDJSON Composer variant: one item per
// line, trailing newline present, as bulk endpoints and file sinks expect.
package ndjson

import (
	"bytes"

	"kvx.dev/kvx/apis/kvxcomposer"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxtransform"
)

// Composer makes every item, including the last, end in "\n", appending
// one only to items that do not already end in it.
type Composer struct{}

var _ kvxcomposer.Composer = Composer{}

// New constructs an NDJSON composer.
func New() Composer { return Composer{} }

// Kind returns kvxcomposer.KindNDJSON.
func (Composer) Kind() kvxcomposer.Kind { return kvxcomposer.KindNDJSON }

// Compose transforms each page and writes every resulting item, ensuring
// each is newline-terminated. Empty input yields the empty string.
//
// An item that already ends in "\n" (Passthrough borrows a whole page,
// which may already carry its own line terminators) is not given a second
// one, so file-to-file passthrough reproduces the source bytes exactly.
func (Composer) Compose(pages []kvxpage.Page, transform kvxtransform.Transform) ([]byte, error) {
	var buf bytes.Buffer
	for _, p := range pages {
		buf.Grow(p.Len() + 64)
	}

	for _, p := range pages {
		items, err := transform.Apply(p)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			b := item.Bytes()
			buf.Write(b)
			if len(b) == 0 || b[len(b)-1] != '\n' {
				buf.WriteByte('\n')
			}
		}
	}
	return buf.Bytes(), nil
}
