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

// Package file implements the File Source variant: a buffered line reader
// over a regular file on disk.
package file

import (
	"context"
	"os"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxsource"
	"kvx.dev/kvx/runtime/source/internal/linepager"
)

// Source reads newline-delimited documents from a regular file.
type Source struct {
	f      *os.File
	pager  *linepager.Pager
	common kvxsource.CommonSource

	totalBytes int64
	haveTotal  bool
}

var _ kvxsource.Source = (*Source)(nil)
var _ kvxsource.Sizer = (*Source)(nil)

// Open opens fileName and prepares a Source over it. A failure to stat the
// file for its size is not fatal; the total is reported as unknown.
func Open(fileName string, common kvxsource.CommonSource) (*Source, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, kvxerrors.SourceIOError("open source file", err)
	}

	s := &Source{f: f, pager: linepager.New(f), common: common.WithDefaults()}
	if info, statErr := f.Stat(); statErr == nil {
		s.totalBytes = info.Size()
		s.haveTotal = true
	}
	return s, nil
}

// NextPage returns the next buffered page, or ok=false at end-of-stream.
func (s *Source) NextPage(ctx context.Context) (kvxpage.Page, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	page, ok, err := s.pager.NextPage(s.common.MaxBatchSizeBytes, s.common.MaxBatchSizeDocs)
	if err != nil {
		return nil, false, kvxerrors.SourceIOError("read source file", err)
	}
	return page, ok, nil
}

// TotalBytes reports the file size captured at open, if known.
func (s *Source) TotalBytes() (int64, bool) {
	return s.totalBytes, s.haveTotal
}

// Close releases the underlying file handle.
func (s *Source) Close(_ context.Context) error {
	if err := s.f.Close(); err != nil {
		return kvxerrors.SourceIOError("close source file", err)
	}
	return nil
}
