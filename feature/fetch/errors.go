package fetch

import (
	"errors"
	"fmt"

	"blob-loader/core/storage"
)

// Kind classifies a fetch failure.
type Kind int

const (
	// KindUnexpected covers every failure that is not one of the kinds below.
	KindUnexpected Kind = iota
	// KindBucketNotFound means the bucket does not exist.
	KindBucketNotFound
	// KindObjectNotFound means the bucket exists but the object does not.
	KindObjectNotFound
	// KindAccessDenied means the credential in use lacks permission.
	KindAccessDenied
)

// ErrUnexpected matches errors of KindUnexpected with errors.Is.
var ErrUnexpected = errors.New("unexpected error")

func (k Kind) String() string {
	switch k {
	case KindBucketNotFound:
		return "bucket_not_found"
	case KindObjectNotFound:
		return "object_not_found"
	case KindAccessDenied:
		return "access_denied"
	default:
		return "unexpected"
	}
}

// sentinel returns the error value errors.Is matches for k.
func (k Kind) sentinel() error {
	switch k {
	case KindBucketNotFound:
		return storage.ErrBucketNotFound
	case KindObjectNotFound:
		return storage.ErrObjectNotFound
	case KindAccessDenied:
		return storage.ErrAccessDenied
	default:
		return ErrUnexpected
	}
}

// hint is the remediation advice logged with a failure of kind k.
func (k Kind) hint() string {
	switch k {
	case KindBucketNotFound, KindObjectNotFound:
		return "check the bucket name and object key"
	case KindAccessDenied:
		return "check the permissions of the credential in use"
	default:
		return "see the wrapped error for details"
	}
}

// Error is returned by Fetch for every failure.
type Error struct {
	Kind   Kind
	Bucket string
	Key    string
	// Err is the original cause.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBucketNotFound:
		return fmt.Sprintf("bucket %q not found: %v", e.Bucket, e.Err)
	case KindObjectNotFound:
		return fmt.Sprintf("object %q not found in bucket %q", e.Key, e.Bucket)
	case KindAccessDenied:
		return fmt.Sprintf("access denied on bucket %q, object %q: %v", e.Bucket, e.Key, e.Err)
	default:
		return fmt.Sprintf("unexpected error fetching object %q from bucket %q: %v", e.Key, e.Bucket, e.Err)
	}
}

// Unwrap returns the original cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the classification of err. Errors that are not an *Error are
// classified from the storage sentinels they wrap.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return classify(err)
}

// classify maps a storage error onto a Kind.
func classify(err error) Kind {
	switch {
	case errors.Is(err, storage.ErrAccessDenied):
		return KindAccessDenied
	case errors.Is(err, storage.ErrBucketNotFound):
		return KindBucketNotFound
	case errors.Is(err, storage.ErrObjectNotFound):
		return KindObjectNotFound
	default:
		return KindUnexpected
	}
}
