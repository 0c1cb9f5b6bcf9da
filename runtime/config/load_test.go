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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"kvx.dev/kvx/apis/kvxsink"
	"kvx.dev/kvx/apis/kvxsource"
)

const sampleConfig = `
runtime:
  queue_capacity: 5
  sink_parallelism: 2
source:
  kind: object_store
  object_store:
    track: geonames
    bucket: my-bucket
    region: eu-west-1
sink:
  kind: file
  file:
    file_name: /tmp/out.ndjson
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "kvx.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed writing test fixture: %v", err)
	}
	return path
}

func TestLoadDecodesYAMLAndTrackHook(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if spec.Runtime.QueueCapacity != 5 {
		t.Fatalf("QueueCapacity = %d, want 5", spec.Runtime.QueueCapacity)
	}
	if spec.Runtime.SinkParallelism != 2 {
		t.Fatalf("SinkParallelism = %d, want 2", spec.Runtime.SinkParallelism)
	}
	if spec.Source.Kind != kvxsource.KindObjectStore {
		t.Fatalf("Source.Kind = %q, want %q", spec.Source.Kind, kvxsource.KindObjectStore)
	}
	if spec.Source.ObjectStore.Track != kvxsource.TrackGeonames {
		t.Fatalf("ObjectStore.Track = %q, want %q (decode hook must invoke Track.UnmarshalText)", spec.Source.ObjectStore.Track, kvxsource.TrackGeonames)
	}
	if spec.Source.ObjectStore.Bucket != "my-bucket" {
		t.Fatalf("ObjectStore.Bucket = %q, want %q", spec.Source.ObjectStore.Bucket, "my-bucket")
	}
	if spec.Sink.Kind != kvxsink.KindFile {
		t.Fatalf("Sink.Kind = %q, want %q", spec.Sink.Kind, kvxsink.KindFile)
	}
	if spec.Sink.File.FileName != "/tmp/out.ndjson" {
		t.Fatalf("File.FileName = %q, want %q", spec.Sink.File.FileName, "/tmp/out.ndjson")
	}

	// defaults filled in for fields the fixture omits.
	if spec.Source.Common.MaxBatchSizeDocs != 10000 {
		t.Fatalf("Common.MaxBatchSizeDocs = %d, want default 10000", spec.Source.Common.MaxBatchSizeDocs)
	}
}

func TestLoadEnvOverlayOverridesFile(t *testing.T) {
	path := writeConfig(t, sampleConfig)

	t.Setenv("KVX_RUNTIME_SINK_PARALLELISM", "9")

	spec, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if spec.Runtime.SinkParallelism != 9 {
		t.Fatalf("SinkParallelism = %d, want 9 (env overlay must win)", spec.Runtime.SinkParallelism)
	}
}

func TestLoadRejectsUnrecognizedTrack(t *testing.T) {
	path := writeConfig(t, `
source:
  kind: object_store
  object_store:
    track: not_a_real_track
    bucket: b
sink:
  kind: in_memory
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error decoding an unrecognized track name")
	}
}

func TestLoadFailsValidationWhenSourceKindMissing(t *testing.T) {
	path := writeConfig(t, `
sink:
  kind: in_memory
`)

	if _, err := Load(path); err == nil {
		t.Fatal("expected a ConfigError when source.kind is missing")
	}
}

func TestLoadWithoutPathYieldsDefaults(t *testing.T) {
	spec, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") should not fail just because there is no config file: %v", err)
	}
	if spec.Runtime.QueueCapacity != 10 {
		t.Fatalf("QueueCapacity = %d, want default 10", spec.Runtime.QueueCapacity)
	}
}
