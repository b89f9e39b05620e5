package storage_test

import (
	"context"
	"testing"

	"blob-loader/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClient(t *testing.T) {
	ctx := context.Background()
	client := storage.NewMemoryClient()
	client.PutObject("data-bucket", "sample.csv", []byte("1,2,3\n4,5,6\n"))
	client.MakeBucket("empty")
	client.PutObject("locked", "secret.csv", []byte("x"))
	client.DenyBucket("locked")

	t.Run("ReadExisting", func(t *testing.T) {
		bucket, err := client.Bucket(ctx, "data-bucket")
		require.NoError(t, err)
		object, err := client.Object(ctx, bucket, "sample.csv")
		require.NoError(t, err)
		require.NotNil(t, object)
		assert.Equal(t, int64(12), object.Size)

		data, err := client.ReadObject(ctx, object)
		require.NoError(t, err)
		assert.Equal(t, "1,2,3\n4,5,6\n", string(data))
	})

	t.Run("MissingBucket", func(t *testing.T) {
		_, err := client.Bucket(ctx, "nope")
		assert.ErrorIs(t, err, storage.ErrBucketNotFound)
	})

	t.Run("MissingObjectIsAbsent", func(t *testing.T) {
		bucket, err := client.Bucket(ctx, "empty")
		require.NoError(t, err)
		object, err := client.Object(ctx, bucket, "missing.csv")
		assert.NoError(t, err)
		assert.Nil(t, object)
	})

	t.Run("DeniedBucket", func(t *testing.T) {
		_, err := client.Bucket(ctx, "locked")
		assert.ErrorIs(t, err, storage.ErrAccessDenied)
	})

	t.Run("ReturnsCopy", func(t *testing.T) {
		bucket, _ := client.Bucket(ctx, "data-bucket")
		object, _ := client.Object(ctx, bucket, "sample.csv")
		data, _ := client.ReadObject(ctx, object)
		data[0] = 'X'

		again, err := client.ReadObject(ctx, object)
		require.NoError(t, err)
		assert.Equal(t, byte('1'), again[0])
	})
}
