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

package kvxsink

// CommonSink holds the knobs shared by every Sink variant.
type CommonSink struct {
	// MaxRequestSizeBytes is the byte threshold that triggers a flush in
	// the owning SinkWorker.
	MaxRequestSizeBytes int `yaml:"max_request_size_bytes" json:"max_request_size_bytes" mapstructure:"max_request_size_bytes"`
}

// DefaultCommonSink returns the spec-mandated default.
func DefaultCommonSink() CommonSink {
	return CommonSink{MaxRequestSizeBytes: 10 * 1024 * 1024}
}

// WithDefaults fills in zero fields with the spec default.
func (c CommonSink) WithDefaults() CommonSink {
	out := c
	if out.MaxRequestSizeBytes <= 0 {
		out.MaxRequestSizeBytes = DefaultCommonSink().MaxRequestSizeBytes
	}
	return out
}

// Rotation describes optional file rotation for the File sink. It is a
// conformant extension, not required by any invariant: when zero-valued,
// no rotation is applied.
type Rotation struct {
	// MaxSizeMB is the maximum size of a single file before rotation.
	MaxSizeMB int `yaml:"max_size_mb" json:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxAgeDays is the maximum age of a file before rotation.
	MaxAgeDays int `yaml:"max_age_days" json:"max_age_days" mapstructure:"max_age_days"`

	// MaxBackups is the number of old files to keep.
	MaxBackups int `yaml:"max_backups" json:"max_backups" mapstructure:"max_backups"`

	// Compress indicates whether rotated files should be gzip-compressed.
	Compress bool `yaml:"compress" json:"compress" mapstructure:"compress"`
}

// Enabled reports whether any rotation knob was configured.
func (r Rotation) Enabled() bool {
	return r.MaxSizeMB > 0 || r.MaxAgeDays > 0 || r.MaxBackups > 0
}

// Specification is the resolved, immutable configuration for one Sink
// instance. Exactly one of the Kind-specific fields is populated,
// determined by Kind.
type Specification struct {
	Kind Kind `yaml:"kind" json:"kind" mapstructure:"kind"`

	File struct {
		FileName string   `yaml:"file_name" json:"file_name" mapstructure:"file_name"`
		Rotation Rotation `yaml:"rotation" json:"rotation" mapstructure:"rotation"`
	} `yaml:"file" json:"file" mapstructure:"file"`

	BulkHTTP struct {
		URL      string `yaml:"url" json:"url" mapstructure:"url"`
		Username string `yaml:"username" json:"username" mapstructure:"username"`
		Password string `yaml:"password" json:"password" mapstructure:"password"`
		APIKey   string `yaml:"api_key" json:"api_key" mapstructure:"api_key"`
		Index    string `yaml:"index" json:"index" mapstructure:"index"`
	} `yaml:"bulk_http" json:"bulk_http" mapstructure:"bulk_http"`

	Common CommonSink `yaml:"common" json:"common" mapstructure:"common"`
}
