package storage_test

import (
	"context"
	"testing"

	"blob-loader/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Minio", func(t *testing.T) {
		cfg := storage.Config{
			Provider:  storage.ProviderMinio,
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(ctx, cfg)
		assert.NoError(t, err)
		assert.IsType(t, &storage.MinioClient{}, client)
	})

	t.Run("S3WithEndpoint", func(t *testing.T) {
		cfg := storage.Config{
			Provider:  storage.ProviderS3,
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(ctx, cfg)
		assert.NoError(t, err)
		assert.IsType(t, &storage.S3Client{}, client)
	})

	t.Run("GCSEmulator", func(t *testing.T) {
		cfg := storage.Config{
			Provider: storage.ProviderGCS,
			Endpoint: "http://localhost:4443/storage/v1/",
		}

		client, err := storage.NewClient(ctx, cfg)
		require.NoError(t, err)
		assert.IsType(t, &storage.GCSClient{}, client)
		assert.NoError(t, storage.Close(client))
	})

	t.Run("Memory", func(t *testing.T) {
		client, err := storage.NewClient(ctx, storage.Config{Provider: storage.ProviderMemory})
		assert.NoError(t, err)
		assert.IsType(t, &storage.MemoryClient{}, client)
		assert.NoError(t, storage.Close(client))
	})

	t.Run("UnknownProvider", func(t *testing.T) {
		client, err := storage.NewClient(ctx, storage.Config{Provider: "ftp"})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
