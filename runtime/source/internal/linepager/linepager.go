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

// Package linepager implements the line-accumulation loop shared by the
// File and ObjectStore sources: read lines from an underlying reader,
// strip trailing CR/LF, join with "\n", and stop at a byte cap, a line
// cap, or EOF.
package linepager

import (
	"bufio"
	"bytes"
	"io"

	"kvx.dev/kvx/apis/kvxpage"
)

// maxLineBytes bounds a single scanned line, matching the ceiling a
// misconfigured or corrupt source file could otherwise drive unbounded.
const maxLineBytes = 64 * 1024 * 1024

// Pager wraps an io.Reader with bufio.Scanner line splitting and exposes
// the Source.NextPage shape directly.
type Pager struct {
	scanner *bufio.Scanner
	done    bool
}

// New constructs a Pager over r.
func New(r io.Reader) *Pager {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &Pager{scanner: scanner}
}

// NextPage accumulates lines into a page until maxBytes is exceeded,
// maxDocs lines have been accumulated, or the underlying reader is
// exhausted. It returns ok=false once no further page is available.
func (p *Pager) NextPage(maxBytes, maxDocs int) (kvxpage.Page, bool, error) {
	if p.done {
		return nil, false, nil
	}

	var buf bytes.Buffer
	docs := 0

	for p.scanner.Scan() {
		line := bytes.TrimRight(p.scanner.Bytes(), "\r\n")
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(line)
		docs++

		if buf.Len() > maxBytes || docs >= maxDocs {
			return kvxpage.Page(buf.Bytes()), true, nil
		}
	}

	if err := p.scanner.Err(); err != nil {
		return nil, false, err
	}

	p.done = true
	if buf.Len() == 0 {
		return nil, false, nil
	}
	return kvxpage.Page(buf.Bytes()), true, nil
}
