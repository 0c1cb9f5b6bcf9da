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

package kvxsource

import "fmt"

// CommonSource holds the knobs shared by every Source variant.
type CommonSource struct {
	// MaxBatchSizeDocs bounds a page's item count (lines or documents).
	MaxBatchSizeDocs int `yaml:"max_batch_size_docs" json:"max_batch_size_docs" mapstructure:"max_batch_size_docs"`

	// MaxBatchSizeBytes bounds a page's byte size.
	MaxBatchSizeBytes int `yaml:"max_batch_size_bytes" json:"max_batch_size_bytes" mapstructure:"max_batch_size_bytes"`
}

// DefaultCommonSource returns the spec-mandated defaults.
func DefaultCommonSource() CommonSource {
	return CommonSource{
		MaxBatchSizeDocs:  10000,
		MaxBatchSizeBytes: 10 * 1024 * 1024,
	}
}

// WithDefaults fills in zero fields with the spec defaults.
func (c CommonSource) WithDefaults() CommonSource {
	out := c
	if out.MaxBatchSizeDocs <= 0 {
		out.MaxBatchSizeDocs = DefaultCommonSource().MaxBatchSizeDocs
	}
	if out.MaxBatchSizeBytes <= 0 {
		out.MaxBatchSizeBytes = DefaultCommonSource().MaxBatchSizeBytes
	}
	return out
}

// Track is a closed set of recognized OpenSearch Rally benchmark track
// names. Unknown names fail configuration parsing rather than attempting
// to resolve an invalid object key at runtime.
type Track string

const (
	TrackBig5                  Track = "big5"
	TrackClickbench             Track = "clickbench"
	TrackEventdata              Track = "eventdata"
	TrackGeonames               Track = "geonames"
	TrackGeopoint               Track = "geopoint"
	TrackGeopointshape          Track = "geopointshape"
	TrackGeoshape               Track = "geoshape"
	TrackHTTPLogs               Track = "http_logs"
	TrackNested                 Track = "nested"
	TrackNeuralSearch            Track = "neural_search"
	TrackNOAA                   Track = "noaa"
	TrackNOAASemanticSearch      Track = "noaa_semantic_search"
	TrackNYCTaxis                Track = "nyc_taxis"
	TrackPercolator              Track = "percolator"
	TrackPMC                    Track = "pmc"
	TrackSO                     Track = "so"
	TrackTRECCovidSemanticSearch Track = "treccovid_semantic_search"
	TrackVectorSearch            Track = "vectorsearch"
)

var knownTracks = map[Track]struct{}{
	TrackBig5: {}, TrackClickbench: {}, TrackEventdata: {}, TrackGeonames: {},
	TrackGeopoint: {}, TrackGeopointshape: {}, TrackGeoshape: {}, TrackHTTPLogs: {},
	TrackNested: {}, TrackNeuralSearch: {}, TrackNOAA: {}, TrackNOAASemanticSearch: {},
	TrackNYCTaxis: {}, TrackPercolator: {}, TrackPMC: {}, TrackSO: {},
	TrackTRECCovidSemanticSearch: {}, TrackVectorSearch: {},
}

// Valid reports whether t is one of the closed set of recognized tracks.
func (t Track) Valid() bool {
	_, ok := knownTracks[t]
	return ok
}

// DefaultKey returns the default object key for this track:
// "<track>/documents.json".
func (t Track) DefaultKey() string {
	return fmt.Sprintf("%s/documents.json", string(t))
}

// UnmarshalText validates the track name against the closed set at parse
// time, per the "Closed set of benchmark tracks" design note.
func (t *Track) UnmarshalText(text []byte) error {
	candidate := Track(text)
	if !candidate.Valid() {
		return fmt.Errorf("kvx: unrecognized rally track %q", string(text))
	}
	*t = candidate
	return nil
}

// Specification is the resolved, immutable configuration for one Source
// instance. Exactly one of the Kind-specific fields is populated,
// determined by Kind.
type Specification struct {
	Kind Kind `yaml:"kind" json:"kind" mapstructure:"kind"`

	File struct {
		FileName string `yaml:"file_name" json:"file_name" mapstructure:"file_name"`
	} `yaml:"file" json:"file" mapstructure:"file"`

	ObjectStore struct {
		Track  Track  `yaml:"track" json:"track" mapstructure:"track"`
		Bucket string `yaml:"bucket" json:"bucket" mapstructure:"bucket"`
		Region string `yaml:"region" json:"region" mapstructure:"region"`
		Key    string `yaml:"key" json:"key" mapstructure:"key"`
	} `yaml:"object_store" json:"object_store" mapstructure:"object_store"`

	ClusterScroll struct {
		URL      string `yaml:"url" json:"url" mapstructure:"url"`
		Username string `yaml:"username" json:"username" mapstructure:"username"`
		Password string `yaml:"password" json:"password" mapstructure:"password"`
		APIKey   string `yaml:"api_key" json:"api_key" mapstructure:"api_key"`
	} `yaml:"cluster_scroll" json:"cluster_scroll" mapstructure:"cluster_scroll"`

	Common CommonSource `yaml:"common" json:"common" mapstructure:"common"`
}
