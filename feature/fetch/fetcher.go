package fetch

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"blob-loader/core/storage"

	"go.uber.org/zap"
)

var errInvalidUTF8 = errors.New("object content is not valid UTF-8")

// ErrEmptyIdentifier is the cause of a KindUnexpected failure for an empty bucket or key.
var ErrEmptyIdentifier = errors.New("empty identifier")

// Fetch resolves bucket and key through client and returns the object's content
// decoded as UTF-8 text. Every failure is logged once on log and returned as *Error.
func Fetch(ctx context.Context, client storage.Client, log *zap.Logger, bucket, key string) (string, error) {
	text, err := fetch(ctx, client, bucket, key)
	if err != nil {
		log.Error("Failed to fetch object",
			zap.String("bucket", bucket),
			zap.String("key", key),
			zap.Stringer("kind", err.Kind),
			zap.String("hint", err.Kind.hint()),
			zap.Error(err.Err),
		)
		return "", err
	}

	log.Debug("Fetched object",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int("size", len(text)),
	)
	return text, nil
}

func fetch(ctx context.Context, client storage.Client, bucket, key string) (string, *Error) {
	fail := func(kind Kind, err error) *Error {
		return &Error{Kind: kind, Bucket: bucket, Key: key, Err: err}
	}

	if bucket == "" {
		return "", fail(KindUnexpected, fmt.Errorf("%w: bucket name", ErrEmptyIdentifier))
	}
	if key == "" {
		return "", fail(KindUnexpected, fmt.Errorf("%w: object key", ErrEmptyIdentifier))
	}

	b, err := client.Bucket(ctx, bucket)
	if err != nil {
		return "", fail(classify(err), err)
	}

	obj, err := client.Object(ctx, b, key)
	if err != nil {
		return "", fail(classify(err), err)
	}
	if obj == nil {
		return "", fail(KindObjectNotFound,
			fmt.Errorf("%w: object %q not found in bucket %q", storage.ErrObjectNotFound, key, bucket))
	}

	data, err := client.ReadObject(ctx, obj)
	if err != nil {
		return "", fail(classify(err), err)
	}
	if !utf8.Valid(data) {
		return "", fail(KindUnexpected, errInvalidUTF8)
	}
	return string(data), nil
}
