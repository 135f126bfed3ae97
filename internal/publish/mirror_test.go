package publish

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestParseTarget(t *testing.T) {
	cases := []struct {
		raw     string
		want    Target
		wantErr bool
	}{
		{raw: "s3://bucket", want: Target{Scheme: "s3", Bucket: "bucket"}},
		{raw: "s3://bucket/feeds/owls/", want: Target{Scheme: "s3", Bucket: "bucket", Prefix: "feeds/owls"}},
		{raw: " GS://bucket/cal ", want: Target{Scheme: "gs", Bucket: "bucket", Prefix: "cal"}},
		{raw: "https://bucket/x", wantErr: true},
		{raw: "s3:///nobucket", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseTarget(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %+v want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestTargetKeyAndString(t *testing.T) {
	bare := Target{Scheme: "s3", Bucket: "b"}
	if bare.Key("schedule.ics") != "schedule.ics" || bare.String() != "s3://b" {
		t.Fatalf("unexpected bare target %q %q", bare.Key("schedule.ics"), bare.String())
	}
	prefixed := Target{Scheme: "gs", Bucket: "b", Prefix: "feeds"}
	if prefixed.Key("schedule.ics") != "feeds/schedule.ics" || prefixed.String() != "gs://b/feeds" {
		t.Fatalf("unexpected prefixed target %q %q", prefixed.Key("schedule.ics"), prefixed.String())
	}
}

func TestNewMirrorRejectsUnknownScheme(t *testing.T) {
	if _, err := NewMirror(context.Background(), MirrorOptions{URL: "ftp://bucket"}); err == nil {
		t.Fatalf("expected error for ftp scheme")
	}
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3MirrorPut(t *testing.T) {
	putter := &fakePutter{}
	m := &S3Mirror{client: putter, target: Target{Scheme: "s3", Bucket: "cal", Prefix: "owls"}}

	if err := m.Put(context.Background(), "schedule.ics", "text/calendar", []byte("BEGIN:VCALENDAR")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if aws.ToString(putter.input.Bucket) != "cal" || aws.ToString(putter.input.Key) != "owls/schedule.ics" {
		t.Fatalf("unexpected input bucket=%s key=%s", aws.ToString(putter.input.Bucket), aws.ToString(putter.input.Key))
	}
	if aws.ToString(putter.input.ContentType) != "text/calendar" {
		t.Fatalf("unexpected content type %s", aws.ToString(putter.input.ContentType))
	}
	if !bytes.Equal(putter.body, []byte("BEGIN:VCALENDAR")) {
		t.Fatalf("unexpected body %q", putter.body)
	}
	if m.String() != "s3://cal/owls" {
		t.Fatalf("unexpected string %s", m.String())
	}
}

func TestS3MirrorPutError(t *testing.T) {
	boom := errors.New("denied")
	m := &S3Mirror{client: &fakePutter{err: boom}, target: Target{Scheme: "s3", Bucket: "cal"}}
	if err := m.Put(context.Background(), "schedule.json", "", nil); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestNewS3MirrorWithStaticCredentials(t *testing.T) {
	m, err := NewS3Mirror(context.Background(), Target{Scheme: "s3", Bucket: "cal"}, MirrorOptions{
		Endpoint:        "https://account.r2.cloudflarestorage.com",
		Region:          "auto",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("new s3 mirror: %v", err)
	}
	if m.client == nil {
		t.Fatalf("expected client")
	}
}
