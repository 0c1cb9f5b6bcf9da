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
	"os"
	"path/filepath"
	"testing"

	"kvx.dev/kvx/apis/kvxsink"
)

func TestSendThenCloseWritesExactBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")

	s, err := Open(path, kvxsink.Rotation{})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	ctx := context.Background()
	if err := s.Send(ctx, []byte("A\nB\nC\n")); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "A\nB\nC\n" {
		t.Fatalf("file contents = %q, want %q", got, "A\nB\nC\n")
	}
}

func TestOpenTruncatesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	if err := os.WriteFile(path, []byte("stale data that must not survive"), 0o644); err != nil {
		t.Fatalf("seed file error: %v", err)
	}

	s, err := Open(path, kvxsink.Rotation{})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected Open to truncate the existing file, got %q", got)
	}
}

func TestSendAfterCloseFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	s, err := Open(path, kvxsink.Rotation{})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	ctx := context.Background()
	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
	if err := s.Send(ctx, []byte("x")); err == nil {
		t.Fatal("expected an error sending after close")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	s, err := Open(path, kvxsink.Rotation{})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	ctx := context.Background()
	if err := s.Close(ctx); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := s.Close(ctx); err != nil {
		t.Fatalf("second Close() must be a no-op, got error: %v", err)
	}
}

func TestRotationEnabledUsesLumberjackPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ndjson")
	s, err := Open(path, kvxsink.Rotation{MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if s.rotating == nil {
		t.Fatal("expected rotation-enabled Open to construct a lumberjack.Logger")
	}

	ctx := context.Background()
	if err := s.Send(ctx, []byte("hello\n")); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if err := s.Close(ctx); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(got) != "hello\n" {
		t.Fatalf("file contents = %q, want %q", got, "hello\n")
	}
}
