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

// Package file implements the File Sink variant: a truncating, buffered
// writer over a regular file, with optional size/age-based rotation.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxsink"
)

// Sink writes each payload in full to the underlying file. When rotation
// is enabled, writes go directly through a *lumberjack.Logger (which does
// its own internal buffering-free, size-checked writes); otherwise writes
// are buffered and flushed on Close.
type Sink struct {
	mu       sync.Mutex
	fileName string

	f        *os.File
	buffered *bufio.Writer
	rotating *lumberjack.Logger

	closed bool
}

var _ kvxsink.Sink = (*Sink)(nil)

// Open truncates (or creates) fileName and prepares a Sink over it.
func Open(fileName string, rotation kvxsink.Rotation) (*Sink, error) {
	if rotation.Enabled() {
		if err := os.Truncate(fileName, 0); err != nil && !os.IsNotExist(err) {
			return nil, kvxerrors.SinkPreflightError("truncate sink file", err)
		}
		return &Sink{
			fileName: fileName,
			rotating: &lumberjack.Logger{
				Filename:   fileName,
				MaxSize:    maxOrDefault(rotation.MaxSizeMB, 100),
				MaxAge:     rotation.MaxAgeDays,
				MaxBackups: rotation.MaxBackups,
				Compress:   rotation.Compress,
			},
		}, nil
	}

	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, kvxerrors.SinkPreflightError("open sink file", err)
	}
	return &Sink{fileName: fileName, f: f, buffered: bufio.NewWriterSize(f, 1<<20)}, nil
}

func maxOrDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Name reports the target file path.
func (s *Sink) Name() string {
	return fmt.Sprintf("file(%s)", s.fileName)
}

func (s *Sink) writer() io.Writer {
	if s.rotating != nil {
		return s.rotating
	}
	return s.buffered
}

// Send writes payload in full.
func (s *Sink) Send(_ context.Context, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return kvxerrors.SinkSendError("send after close", fmt.Errorf("sink %s is closed", s.fileName))
	}
	if _, err := s.writer().Write(payload); err != nil {
		return kvxerrors.SinkSendError(fmt.Sprintf("write to %s", s.fileName), err)
	}
	return nil
}

// Close flushes buffered data and releases the file handle.
func (s *Sink) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.rotating != nil {
		if err := s.rotating.Close(); err != nil {
			return kvxerrors.SinkCloseError("close rotating sink file", err)
		}
		return nil
	}

	if err := s.buffered.Flush(); err != nil {
		return kvxerrors.SinkCloseError("flush sink file", err)
	}
	if err := s.f.Close(); err != nil {
		return kvxerrors.SinkCloseError("close sink file", err)
	}
	return nil
}
