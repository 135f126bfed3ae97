package publish

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Mirror receives a copy of every committed artifact.
type Mirror interface {
	Put(ctx context.Context, name, contentType string, data []byte) error
	String() string
}

// MirrorOptions selects and authenticates an object-store mirror.
type MirrorOptions struct {
	// URL is s3://bucket/prefix or gs://bucket/prefix.
	URL string
	// Endpoint overrides the S3 endpoint, e.g. a Cloudflare R2 account URL.
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// Target is a parsed mirror URL.
type Target struct {
	Scheme string
	Bucket string
	Prefix string
}

// Key joins the target prefix and an artifact name.
func (t Target) Key(name string) string {
	if t.Prefix == "" {
		return name
	}
	return path.Join(t.Prefix, name)
}

func (t Target) String() string {
	if t.Prefix == "" {
		return t.Scheme + "://" + t.Bucket
	}
	return t.Scheme + "://" + t.Bucket + "/" + t.Prefix
}

// ParseTarget parses s3://bucket/prefix and gs://bucket/prefix.
func ParseTarget(raw string) (Target, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Target{}, fmt.Errorf("publish: parse mirror url: %w", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "s3" && scheme != "gs" {
		return Target{}, fmt.Errorf("publish: unsupported mirror scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return Target{}, fmt.Errorf("publish: mirror url %q has no bucket", raw)
	}
	return Target{
		Scheme: scheme,
		Bucket: u.Host,
		Prefix: strings.Trim(u.Path, "/"),
	}, nil
}

// NewMirror builds the mirror named by opts.URL.
func NewMirror(ctx context.Context, opts MirrorOptions) (Mirror, error) {
	target, err := ParseTarget(opts.URL)
	if err != nil {
		return nil, err
	}
	switch target.Scheme {
	case "s3":
		return NewS3Mirror(ctx, target, opts)
	default:
		return NewGCSMirror(ctx, target)
	}
}
