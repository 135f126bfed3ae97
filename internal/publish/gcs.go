package publish

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

type objectStore interface {
	NewWriter(ctx context.Context, bucket, key, contentType string) io.WriteCloser
	Close() error
}

type storageObjects struct {
	client *storage.Client
}

func (s storageObjects) NewWriter(ctx context.Context, bucket, key, contentType string) io.WriteCloser {
	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	return w
}

func (s storageObjects) Close() error {
	return s.client.Close()
}

// GCSMirror uploads artifacts to a Cloud Storage bucket.
type GCSMirror struct {
	objects objectStore
	target  Target
}

// NewGCSMirror uses application default credentials.
func NewGCSMirror(ctx context.Context, target Target) (*GCSMirror, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("publish: gcs client: %w", err)
	}
	return &GCSMirror{objects: storageObjects{client: client}, target: target}, nil
}

func (m *GCSMirror) Put(ctx context.Context, name, contentType string, data []byte) error {
	key := m.target.Key(name)
	writer := m.objects.NewWriter(ctx, m.target.Bucket, key, contentType)
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("write object %s: %w", key, err)
	}
	// The upload is only committed by Close.
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close object %s: %w", key, err)
	}
	return nil
}

// Close releases the storage client.
func (m *GCSMirror) Close() error {
	return m.objects.Close()
}

func (m *GCSMirror) String() string {
	return m.target.String()
}
