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

// Package bulkhttp implements the BulkHttp Sink variant: an
// Elasticsearch-compatible bulk-indexing endpoint, reached over HTTP.
package bulkhttp

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxsink"
)

const (
	connectTimeout = 10 * time.Second
	requestTimeout = 30 * time.Second
)

// Sink POSTs assembled NDJSON payloads to the cluster's _bulk endpoint.
// It holds no buffer of its own: one Send is one POST.
type Sink struct {
	client   *resty.Client
	baseURL  string
	username string
	password string
	apiKey   string
}

var _ kvxsink.Sink = (*Sink)(nil)

// Open builds the HTTP client and performs the two preflight checks: a
// connectivity GET against the base URL, and, if a static index is
// configured, an existence GET against it. Either failure is fatal at
// construction.
func Open(ctx context.Context, spec kvxsink.Specification) (*Sink, error) {
	cfg := spec.BulkHTTP
	transport := &http.Transport{
		DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
	}
	client := resty.New().
		SetTimeout(requestTimeout).
		SetTransport(transport)

	s := &Sink{
		client:   client,
		baseURL:  strings.TrimRight(cfg.URL, "/"),
		username: cfg.Username,
		password: cfg.Password,
		apiKey:   cfg.APIKey,
	}

	ping := client.R().SetContext(ctx)
	if s.apiKey == "" && s.username != "" {
		ping.SetBasicAuth(s.username, s.password)
	}
	resp, err := ping.Get(cfg.URL)
	if err != nil {
		return nil, kvxerrors.SinkPreflightError("connectivity check against bulk endpoint", err)
	}
	if resp.IsError() {
		return nil, kvxerrors.SinkPreflightError(
			fmt.Sprintf("connectivity check returned %d", resp.StatusCode()), nil)
	}

	if cfg.Index != "" {
		indexURL := s.baseURL + "/" + cfg.Index
		req := s.authedRequest(client.R().SetContext(ctx))
		resp, err := req.Get(indexURL)
		if err != nil {
			return nil, kvxerrors.SinkPreflightError(fmt.Sprintf("check index %q exists", cfg.Index), err)
		}
		if resp.IsError() {
			return nil, kvxerrors.SinkPreflightError(
				fmt.Sprintf("index %q does not exist (status %d)", cfg.Index, resp.StatusCode()), nil)
		}
	}

	return s, nil
}

func (s *Sink) authedRequest(req *resty.Request) *resty.Request {
	switch {
	case s.apiKey != "":
		req.SetHeader("Authorization", "ApiKey "+s.apiKey)
	case s.username != "":
		req.SetBasicAuth(s.username, s.password)
	}
	return req
}

// Name identifies this sink for diagnostics.
func (s *Sink) Name() string {
	return fmt.Sprintf("bulk_http(%s)", s.baseURL)
}

// Send POSTs payload to the _bulk endpoint. A non-2xx response is a
// SinkSendError carrying the status and response body.
func (s *Sink) Send(ctx context.Context, payload []byte) error {
	req := s.authedRequest(s.client.R().SetContext(ctx))
	req.SetHeader("Content-Type", "application/x-ndjson")
	req.SetBody(payload)

	resp, err := req.Post(s.baseURL + "/_bulk")
	if err != nil {
		return kvxerrors.SinkSendError("bulk request failed", err)
	}
	if resp.IsError() {
		return kvxerrors.SinkSendError(
			fmt.Sprintf("bulk request returned %d: %s", resp.StatusCode(), resp.String()), nil)
	}
	return nil
}

// Close releases the HTTP client's connection pool. There is no buffer to
// flush; every Send already completed its own round trip.
func (s *Sink) Close(_ context.Context) error {
	s.client.GetClient().CloseIdleConnections()
	return nil
}
