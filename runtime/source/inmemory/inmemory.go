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

// Package inmemory implements the InMemory Source variant: a single fixed
// page of fixture documents, for tests and local smoke runs.
package inmemory

import (
	"context"

	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxsource"
)

// fixturePage holds four newline-separated JSON literals, the spec's fixed
// fixture payload.
const fixturePage = `{"id":1,"name":"alpha"}` + "\n" +
	`{"id":2,"name":"bravo"}` + "\n" +
	`{"id":3,"name":"charlie"}` + "\n" +
	`{"id":4,"name":"delta"}`

// Source yields fixturePage exactly once, then end-of-stream.
type Source struct {
	served bool
}

var _ kvxsource.Source = (*Source)(nil)

// New constructs a fresh, unserved InMemory source.
func New() *Source {
	return &Source{}
}

// NextPage returns the fixture page on the first call and ok=false
// thereafter.
func (s *Source) NextPage(ctx context.Context) (kvxpage.Page, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if s.served {
		return nil, false, nil
	}
	s.served = true
	return kvxpage.Page(fixturePage), true, nil
}

// Close is a no-op; the source holds no external resources.
func (s *Source) Close(_ context.Context) error {
	return nil
}
