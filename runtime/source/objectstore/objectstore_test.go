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

package objectstore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"kvx.dev/kvx/apis/kvxerrors"
	"kvx.dev/kvx/apis/kvxsource"
)

type fakeClient struct {
	headErr  error
	headSize int64
	getErr   error
	body     string
}

func (f *fakeClient) HeadObject(_ context.Context, _ *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(f.headSize)}, nil
}

func (f *fakeClient) GetObject(_ context.Context, _ *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestOpenSucceedsAndReportsTotalBytes(t *testing.T) {
	fc := &fakeClient{headSize: 42, body: "{\"ObjectID\":1}\n{\"ObjectID\":2}\n"}

	s, err := open(context.Background(), fc, "bucket", "geonames/documents.json", kvxsource.CommonSource{})
	if err != nil {
		t.Fatalf("open() error: %v", err)
	}
	defer s.Close(context.Background())

	total, known := s.TotalBytes()
	if !known || total != 42 {
		t.Fatalf("TotalBytes() = (%d, %v), want (42, true)", total, known)
	}

	page, ok, err := s.NextPage(context.Background())
	if err != nil {
		t.Fatalf("NextPage() error: %v", err)
	}
	if !ok || string(page) != "{\"ObjectID\":1}\n{\"ObjectID\":2}" {
		t.Fatalf("page = %q, ok=%v", page, ok)
	}
}

func TestOpenFailsFatallyOnHeadObjectError(t *testing.T) {
	fc := &fakeClient{headErr: errors.New("access denied")}

	_, err := open(context.Background(), fc, "bucket", "key", kvxsource.CommonSource{})
	if err == nil {
		t.Fatal("expected an error when HeadObject fails")
	}
	if !kvxerrors.IsSinkPreflight(err) {
		t.Fatalf("expected the HeadObject failure to be fatal/preflight-classified, got %v", err)
	}
}

func TestOpenFailsOnGetObjectError(t *testing.T) {
	fc := &fakeClient{getErr: errors.New("object not found")}

	_, err := open(context.Background(), fc, "bucket", "key", kvxsource.CommonSource{})
	if err == nil {
		t.Fatal("expected an error when GetObject fails")
	}
	if !kvxerrors.IsSourceIO(err) {
		t.Fatalf("expected a SourceIOError, got %v", err)
	}
}

func TestOpenRejectsUnknownTrack(t *testing.T) {
	spec := kvxsource.Specification{}
	spec.ObjectStore.Track = kvxsource.Track("not_a_track")
	spec.ObjectStore.Bucket = "bucket"

	_, err := Open(context.Background(), spec)
	if err == nil {
		t.Fatal("expected an error for an unrecognized track before any AWS call is made")
	}
	if !kvxerrors.IsConfig(err) {
		t.Fatalf("expected a ConfigError, got %v", err)
	}
}
