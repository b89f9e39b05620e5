package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GCSClient reads objects from Google Cloud Storage.
type GCSClient struct {
	client *gcs.Client
	// billingProject is charged for requests to Requester Pays buckets.
	billingProject string
}

// NewGCSClient creates a Google Cloud Storage client from the configuration.
// Credentials come from cfg.CredentialsFile when set, otherwise from the environment.
func NewGCSClient(ctx context.Context, cfg Config) (*GCSClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}
	if cfg.Endpoint != "" && cfg.CredentialsFile == "" {
		// Emulators such as fake-gcs-server accept unauthenticated requests.
		opts = append(opts, option.WithoutAuthentication())
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create gcs client: %w", err)
	}
	return &GCSClient{client: client, billingProject: cfg.BillingProject}, nil
}

func (c *GCSClient) bucket(name string) *gcs.BucketHandle {
	b := c.client.Bucket(name)
	if c.billingProject != "" {
		b = b.UserProject(c.billingProject)
	}
	return b
}

// Bucket resolves a bucket by reading its attributes.
func (c *GCSClient) Bucket(ctx context.Context, name string) (*BucketHandle, error) {
	if _, err := c.bucket(name).Attrs(ctx); err != nil {
		return nil, classifyGCS(err, ErrBucketNotFound)
	}
	return &BucketHandle{Name: name}, nil
}

// Object resolves an object. ErrObjectNotExist is reported as an absent object.
func (c *GCSClient) Object(ctx context.Context, bucket *BucketHandle, key string) (*ObjectHandle, error) {
	attrs, err := c.bucket(bucket.Name).Object(key).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyGCS(err, ErrObjectNotFound)
	}
	return &ObjectHandle{
		Bucket:      bucket.Name,
		Key:         key,
		Size:        attrs.Size,
		ContentType: attrs.ContentType,
		ETag:        attrs.Etag,
		Updated:     attrs.Updated,
	}, nil
}

// ReadObject downloads the whole object.
func (c *GCSClient) ReadObject(ctx context.Context, object *ObjectHandle) ([]byte, error) {
	r, err := c.bucket(object.Bucket).Object(object.Key).NewReader(ctx)
	if err != nil {
		return nil, classifyGCS(err, ErrObjectNotFound)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read gcs object: %w", err)
	}
	return data, nil
}

// Close closes the underlying client.
func (c *GCSClient) Close() error {
	return c.client.Close()
}

// classifyGCS maps GCS errors onto the storage sentinels. notFound is used for
// a bare 404 whose subject is implied by the call site.
func classifyGCS(err error, notFound error) error {
	switch {
	case errors.Is(err, gcs.ErrBucketNotExist):
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
	case errors.Is(err, gcs.ErrObjectNotExist):
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusForbidden, http.StatusUnauthorized:
			return fmt.Errorf("%w: %w", ErrAccessDenied, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %w", notFound, err)
		}
	}
	return err
}
