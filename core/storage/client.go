package storage

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrBucketNotFound is returned when the service reports the bucket does not exist.
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrObjectNotFound is returned when the service reports the object does not exist.
	ErrObjectNotFound = errors.New("object not found")
	// ErrAccessDenied is returned when the credential in use lacks permission.
	ErrAccessDenied = errors.New("access denied")
)

// BucketHandle identifies a resolved bucket.
type BucketHandle struct {
	Name string
}

// ObjectHandle identifies a resolved object and carries its metadata.
type ObjectHandle struct {
	Bucket      string
	Key         string
	Size        int64
	ContentType string
	ETag        string
	Updated     time.Time
}

// Client is the capability the fetcher uses to reach an object storage service.
type Client interface {
	// Bucket resolves a bucket by name.
	Bucket(ctx context.Context, name string) (*BucketHandle, error)
	// Object resolves an object within a bucket.
	// A nil handle and a nil error mean the object does not exist.
	Object(ctx context.Context, bucket *BucketHandle, key string) (*ObjectHandle, error)
	// ReadObject returns the full content of the object.
	ReadObject(ctx context.Context, object *ObjectHandle) ([]byte, error)
}

// NewClient creates the storage client selected by cfg.Provider.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	var (
		client Client
		err    error
	)

	switch cfg.Provider {
	case ProviderGCS:
		client, err = NewGCSClient(ctx, cfg)
	case ProviderMinio:
		client, err = NewMinioClient(cfg)
	case ProviderS3:
		client, err = NewS3Client(ctx, cfg)
	case ProviderMemory:
		client = NewMemoryClient()
	default:
		err = fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return client, nil
}

// Close releases resources held by c, if it holds any.
func Close(c Client) error {
	if closer, ok := c.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// timeout returns the configured timeout, defaulting to 30 seconds.
func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
