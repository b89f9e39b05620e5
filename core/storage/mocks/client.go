package mocks

import (
	"context"

	"blob-loader/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Bucket(ctx context.Context, name string) (*storage.BucketHandle, error) {
	args := m.Called(ctx, name)
	if b, ok := args.Get(0).(*storage.BucketHandle); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Object(ctx context.Context, bucket *storage.BucketHandle, key string) (*storage.ObjectHandle, error) {
	args := m.Called(ctx, bucket, key)
	if o, ok := args.Get(0).(*storage.ObjectHandle); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ReadObject(ctx context.Context, object *storage.ObjectHandle) ([]byte, error) {
	args := m.Called(ctx, object)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
