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

// Package objectstore implements the ObjectStore Source variant: streaming
// Rally-track JSON objects out of an S3-compatible bucket, page by page,
// with the exact read contract as the File source.
package objectstore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxpage"
	"kvx.dev/kvx/apis/kvxsource"
	"kvx.dev/kvx/runtime/source/internal/linepager"
)

// client is the subset of *s3.Client this package uses, so tests can
// substitute a fake.
type client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Source streams a Rally track object from S3 as a sequence of pages.
type Source struct {
	c      client
	bucket string
	key    string
	common kvxsource.CommonSource

	pager      *linepager.Pager
	body       closer
	totalBytes int64
	haveTotal  bool
}

type closer interface {
	Close() error
}

var _ kvxsource.Source = (*Source)(nil)
var _ kvxsource.Sizer = (*Source)(nil)

// Open resolves the object key from spec, performs the preflight HEAD, and
// opens the streaming GET. A HEAD failure is fatal: it is the cheapest way
// to catch a missing object or a permissions problem before any sink
// workers are spawned.
func Open(ctx context.Context, spec kvxsource.Specification) (*Source, error) {
	track := spec.ObjectStore.Track
	if !track.Valid() {
		return nil, kvxerrors.ConfigError(fmt.Sprintf("unknown object store track %q", track), nil)
	}

	key := spec.ObjectStore.Key
	if key == "" {
		key = track.DefaultKey()
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(spec.ObjectStore.Region))
	if err != nil {
		return nil, kvxerrors.ConfigError("load AWS configuration", err)
	}
	c := s3.NewFromConfig(cfg)

	return open(ctx, c, spec.ObjectStore.Bucket, key, spec.Common)
}

func open(ctx context.Context, c client, bucket, key string, common kvxsource.CommonSource) (*Source, error) {
	s := &Source{c: c, bucket: bucket, key: key, common: common.WithDefaults()}

	head, err := c.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, kvxerrors.SinkPreflightError(fmt.Sprintf("head object s3://%s/%s", bucket, key), err)
	}
	if head.ContentLength != nil {
		s.totalBytes = *head.ContentLength
		s.haveTotal = true
	}

	obj, err := c.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, kvxerrors.SourceIOError(fmt.Sprintf("get object s3://%s/%s", bucket, key), err)
	}

	s.body = obj.Body
	s.pager = linepager.New(obj.Body)
	return s, nil
}

// NextPage returns the next buffered page from the object body.
func (s *Source) NextPage(ctx context.Context) (kvxpage.Page, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	page, ok, err := s.pager.NextPage(s.common.MaxBatchSizeBytes, s.common.MaxBatchSizeDocs)
	if err != nil {
		return nil, false, kvxerrors.SourceIOError(fmt.Sprintf("read s3://%s/%s", s.bucket, s.key), err)
	}
	return page, ok, nil
}

// TotalBytes reports the content length captured by the preflight HEAD, if
// known.
func (s *Source) TotalBytes() (int64, bool) {
	return s.totalBytes, s.haveTotal
}

// Close releases the object body stream.
func (s *Source) Close(_ context.Context) error {
	if s.body == nil {
		return nil
	}
	if err := s.body.Close(); err != nil {
		return kvxerrors.SourceIOError("close object body", err)
	}
	return nil
}
