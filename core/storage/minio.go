package storage

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioClient reads objects from MinIO or another S3-compatible service.
type MinioClient struct {
	client *minio.Client
}

// NewMinioClient creates a new Minio client based on the configuration.
func NewMinioClient(cfg Config) (*MinioClient, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	// Ensure timeout defaults if not set
	timeout := cfg.timeout()

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout, // TLS Handshake timeout
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout, // Wait for first response byte timeout
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio connects lazily, so a bad endpoint only surfaces on the first Bucket call.
	return &MinioClient{client: client}, nil
}

// Bucket resolves a bucket through BucketExists.
func (c *MinioClient) Bucket(ctx context.Context, name string) (*BucketHandle, error) {
	exists, err := c.client.BucketExists(ctx, name)
	if err != nil {
		return nil, classifyMinio(err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, name)
	}
	return &BucketHandle{Name: name}, nil
}

// Object resolves an object through StatObject. NoSuchKey is reported as an absent object.
func (c *MinioClient) Object(ctx context.Context, bucket *BucketHandle, key string) (*ObjectHandle, error) {
	info, err := c.client.StatObject(ctx, bucket.Name, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, classifyMinio(err)
	}
	return &ObjectHandle{
		Bucket:      bucket.Name,
		Key:         key,
		Size:        info.Size,
		ContentType: info.ContentType,
		ETag:        info.ETag,
		Updated:     info.LastModified,
	}, nil
}

// ReadObject downloads the whole object.
func (c *MinioClient) ReadObject(ctx context.Context, object *ObjectHandle) ([]byte, error) {
	obj, err := c.client.GetObject(ctx, object.Bucket, object.Key, minio.GetObjectOptions{})
	if err != nil {
		return nil, classifyMinio(err)
	}
	defer obj.Close()

	// minio.Object issues the request lazily, so service errors surface on read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, classifyMinio(err)
	}
	return data, nil
}

// classifyMinio maps a MinIO error response onto the storage sentinels.
func classifyMinio(err error) error {
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code == "NoSuchBucket":
		return fmt.Errorf("%w: %w", ErrBucketNotFound, err)
	case resp.Code == "NoSuchKey":
		return fmt.Errorf("%w: %w", ErrObjectNotFound, err)
	case resp.Code == "AccessDenied", resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %w", ErrAccessDenied, err)
	}
	return err
}
