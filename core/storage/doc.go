// Package storage provides an abstraction layer for object storage services.
//
// The Client interface is the capability handed to the fetcher: it resolves a bucket,
// resolves an object within that bucket and reads the object's bytes. Each adapter maps
// the status signals of its provider onto the sentinel errors ErrBucketNotFound,
// ErrObjectNotFound and ErrAccessDenied, keeping the provider error wrapped.
//
// # Providers
//
//   - gcs: Google Cloud Storage (cloud.google.com/go/storage).
//   - minio: MinIO or any S3-compatible endpoint (minio-go).
//   - s3: AWS S3 (aws-sdk-go-v2).
//   - memory: in-process buckets, used by tests and local runs.
//
// # Missing objects
//
// Object returns (nil, nil) when the object does not exist. Providers differ here: GCS
// and MinIO report a missing object as an error on stat, S3 as a 404 on HEAD. Adapters
// translate those signals into an absent result so callers handle one shape.
//
// # Usage
//
//	client, err := storage.NewClient(ctx, cfg.Storage)
//	bucket, err := client.Bucket(ctx, "data-bucket")
//	object, err := client.Object(ctx, bucket, "sample.csv")
//	data, err := client.ReadObject(ctx, object)
package storage
