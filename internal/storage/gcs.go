package storage

import (
	"context"
	"fmt"
	"os"

	gcstorage "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSSaver uploads files to a Google Cloud Storage bucket.
type GCSSaver struct {
	client *gcstorage.Client
	bucket string
}

// NewGCSSaver connects with application default credentials, or with the key
// file named by GCS_CREDENTIALS_FILE when set.
func NewGCSSaver(ctx context.Context, bucket string) (*GCSSaver, error) {
	var opts []option.ClientOption
	if keyFile := os.Getenv("GCS_CREDENTIALS_FILE"); keyFile != "" {
		opts = append(opts, option.WithCredentialsFile(keyFile))
	}
	client, err := gcstorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSSaver{client: client, bucket: bucket}, nil
}

// Save uploads data and returns the public object URL once the writer has
// been closed successfully.
func (s *GCSSaver) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyFile
	}

	name := ObjectName(originalName)
	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize object: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, name), nil
}

// Close releases the underlying client.
func (s *GCSSaver) Close() error {
	return s.client.Close()
}
