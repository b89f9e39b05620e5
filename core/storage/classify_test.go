package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	gcs "cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClassifyGCS(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound error
		want     error
	}{
		{"BucketNotExist", gcs.ErrBucketNotExist, ErrBucketNotFound, ErrBucketNotFound},
		{"ObjectNotExist", gcs.ErrObjectNotExist, ErrBucketNotFound, ErrObjectNotFound},
		{"Forbidden", &googleapi.Error{Code: 403}, ErrBucketNotFound, ErrAccessDenied},
		{"Unauthorized", &googleapi.Error{Code: 401}, ErrObjectNotFound, ErrAccessDenied},
		{"Bare404", &googleapi.Error{Code: 404}, ErrObjectNotFound, ErrObjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyGCS(tt.err, tt.notFound)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("Unclassified", func(t *testing.T) {
		orig := &googleapi.Error{Code: 503}
		err := classifyGCS(orig, ErrBucketNotFound)
		assert.Same(t, orig, err)
	})
}

func TestClassifyMinio(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"NoSuchBucket", minio.ErrorResponse{Code: "NoSuchBucket", StatusCode: 404}, ErrBucketNotFound},
		{"NoSuchKey", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}, ErrObjectNotFound},
		{"AccessDenied", minio.ErrorResponse{Code: "AccessDenied", StatusCode: 403}, ErrAccessDenied},
		{"Status403", minio.ErrorResponse{StatusCode: 403}, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyMinio(tt.err), tt.want)
		})
	}

	t.Run("Unclassified", func(t *testing.T) {
		orig := errors.New("connection reset")
		err := classifyMinio(orig)
		assert.Equal(t, orig, err)
		assert.NotErrorIs(t, err, ErrAccessDenied)
	})
}

func TestClassifyS3(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		notFound error
		want     error
	}{
		{"NoSuchBucket", &types.NoSuchBucket{}, ErrObjectNotFound, ErrBucketNotFound},
		{"NoSuchKey", &types.NoSuchKey{}, ErrBucketNotFound, ErrObjectNotFound},
		{"HeadBucketNotFound", &types.NotFound{}, ErrBucketNotFound, ErrBucketNotFound},
		{"HeadObjectNotFound", &types.NotFound{}, ErrObjectNotFound, ErrObjectNotFound},
		{"AccessDenied", &smithy.GenericAPIError{Code: "AccessDenied"}, ErrBucketNotFound, ErrAccessDenied},
		{"Forbidden", &smithy.GenericAPIError{Code: "Forbidden"}, ErrBucketNotFound, ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyS3(tt.err, tt.notFound), tt.want)
		})
	}

	t.Run("Unclassified", func(t *testing.T) {
		orig := &smithy.GenericAPIError{Code: "InternalError"}
		assert.Same(t, orig, classifyS3(orig, ErrBucketNotFound))
	})
}

type fakeS3 struct {
	headBucketErr error
	headObjectErr error
	body          string
}

func (f *fakeS3) HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if f.headBucketErr != nil {
		return nil, f.headBucketErr
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headObjectErr != nil {
		return nil, f.headObjectErr
	}
	return &s3.HeadObjectOutput{
		ContentLength: aws.Int64(int64(len(f.body))),
		ContentType:   aws.String("text/csv"),
	}, nil
}

func (f *fakeS3) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte(f.body)))}, nil
}

func TestS3Client(t *testing.T) {
	ctx := context.Background()

	t.Run("Read", func(t *testing.T) {
		client := NewS3ClientFromAPI(&fakeS3{body: "1,2,3\n"})
		bucket, err := client.Bucket(ctx, "data-bucket")
		require.NoError(t, err)
		object, err := client.Object(ctx, bucket, "sample.csv")
		require.NoError(t, err)
		require.NotNil(t, object)
		assert.Equal(t, int64(6), object.Size)
		assert.Equal(t, "text/csv", object.ContentType)

		data, err := client.ReadObject(ctx, object)
		require.NoError(t, err)
		assert.Equal(t, "1,2,3\n", string(data))
	})

	t.Run("BucketMissing", func(t *testing.T) {
		client := NewS3ClientFromAPI(&fakeS3{headBucketErr: &types.NotFound{}})
		_, err := client.Bucket(ctx, "data-bucket")
		assert.ErrorIs(t, err, ErrBucketNotFound)
	})

	t.Run("ObjectMissingIsAbsent", func(t *testing.T) {
		client := NewS3ClientFromAPI(&fakeS3{headObjectErr: &types.NotFound{}})
		object, err := client.Object(ctx, &BucketHandle{Name: "data-bucket"}, "missing.csv")
		assert.NoError(t, err)
		assert.Nil(t, object)
	})

	t.Run("ObjectForbidden", func(t *testing.T) {
		client := NewS3ClientFromAPI(&fakeS3{headObjectErr: &smithy.GenericAPIError{Code: "Forbidden"}})
		object, err := client.Object(ctx, &BucketHandle{Name: "data-bucket"}, "secret.csv")
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Nil(t, object)
	})
}
