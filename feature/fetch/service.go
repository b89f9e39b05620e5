package fetch

import (
	"context"

	"blob-loader/core/storage"

	"go.uber.org/zap"
)

// Service fetches objects through a storage client owned by the caller.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new fetch service. bucket is the default bucket used by Fetch.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Fetch returns the text of key in the default bucket.
func (s *Service) Fetch(ctx context.Context, key string) (string, error) {
	return Fetch(ctx, s.client, s.logger, s.bucket, key)
}

// FetchFrom returns the text of key in bucket.
func (s *Service) FetchFrom(ctx context.Context, bucket, key string) (string, error) {
	return Fetch(ctx, s.client, s.logger, bucket, key)
}
