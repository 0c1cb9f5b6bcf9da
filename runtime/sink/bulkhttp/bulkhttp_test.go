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

package bulkhttp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxsink"
)

func specFor(url string) kvxsink.Specification {
	var spec kvxsink.Specification
	spec.Kind = kvxsink.KindBulkHTTP
	spec.BulkHTTP.URL = url
	return spec
}

func TestOpenSucceedsWhenClusterReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := Open(context.Background(), specFor(srv.URL))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}

func TestOpenFailsOnConnectivityError(t *testing.T) {
	_, err := Open(context.Background(), specFor("http://127.0.0.1:1"))
	if err == nil {
		t.Fatal("expected an error when the cluster is unreachable")
	}
	if !kvxerrors.IsSinkPreflight(err) {
		t.Fatalf("expected a SinkPreflightError, got %v", err)
	}
}

func TestOpenFailsWhenIndexMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/my-index" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	spec := specFor(srv.URL)
	spec.BulkHTTP.Index = "my-index"

	_, err := Open(context.Background(), spec)
	if err == nil {
		t.Fatal("expected an error naming the missing index")
	}
	if !kvxerrors.IsSinkPreflight(err) {
		t.Fatalf("expected a SinkPreflightError, got %v", err)
	}
}

func TestOpenPrefersAPIKeyOverBasicAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/my-index" {
			gotAuth = r.Header.Get("Authorization")
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	spec := specFor(srv.URL)
	spec.BulkHTTP.Index = "my-index"
	spec.BulkHTTP.Username = "operator"
	spec.BulkHTTP.Password = "secret"
	spec.BulkHTTP.APIKey = "abc123"

	if _, err := Open(context.Background(), spec); err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if gotAuth != "ApiKey abc123" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "ApiKey abc123")
	}
}

func TestSendPostsNDJSONToBulkEndpoint(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/_bulk" {
			gotPath = r.URL.Path
			gotContentType = r.Header.Get("Content-Type")
			gotBody, _ = io.ReadAll(r.Body)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := Open(context.Background(), specFor(srv.URL))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	payload := []byte(`{"index":{"_id":"1"}}` + "\n" + `{"a":1}` + "\n")
	if err := s.Send(context.Background(), payload); err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if gotPath != "/_bulk" {
		t.Fatalf("request path = %q, want %q", gotPath, "/_bulk")
	}
	if gotContentType != "application/x-ndjson" {
		t.Fatalf("Content-Type = %q, want %q", gotContentType, "application/x-ndjson")
	}
	if string(gotBody) != string(payload) {
		t.Fatalf("body = %q, want %q", gotBody, payload)
	}
}

func TestSendNon2xxIsSinkSendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/_bulk" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s, err := Open(context.Background(), specFor(srv.URL))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}

	err = s.Send(context.Background(), []byte("{}\n"))
	if err == nil {
		t.Fatal("expected an error for a non-2xx bulk response")
	}
	if !kvxerrors.IsSinkSend(err) {
		t.Fatalf("expected a SinkSendError, got %v", err)
	}
}
