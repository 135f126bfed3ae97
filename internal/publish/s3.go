package publish

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Mirror uploads artifacts to an S3-compatible bucket (AWS S3, Cloudflare R2).
type S3Mirror struct {
	client objectPutter
	target Target
}

// NewS3Mirror loads the default AWS config, then applies static credentials and
// the endpoint override when provided.
func NewS3Mirror(ctx context.Context, target Target, opts MirrorOptions) (*S3Mirror, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("publish: load aws config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Mirror{client: client, target: target}, nil
}

func (m *S3Mirror) Put(ctx context.Context, name, contentType string, data []byte) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(m.target.Bucket),
		Key:    aws.String(m.target.Key(name)),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := m.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("put object %s: %w", m.target.Key(name), err)
	}
	return nil
}

func (m *S3Mirror) String() string {
	return m.target.String()
}
