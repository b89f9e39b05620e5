// Package fetch loads an object from a storage bucket and returns it as text.
//
// Fetch is the single operation: it resolves the bucket, resolves the object within it
// and reads the object's bytes, decoding them as UTF-8. The storage client is passed in
// by the caller and is never constructed, closed or pooled here.
//
// # Failures
//
// Every failure is returned as *Error carrying one of four kinds:
//
//   - KindBucketNotFound: the bucket does not exist.
//   - KindObjectNotFound: the object does not exist, whether the service raised an error
//     or returned an absent object.
//   - KindAccessDenied: the credential lacks permission on the bucket or object.
//   - KindUnexpected: anything else, including invalid UTF-8 content.
//
// Each failure is logged exactly once, with the bucket, the key and a remediation hint,
// before it is returned. errors.Is matches the storage sentinels (and ErrUnexpected) by
// kind, and errors.Unwrap yields the original cause.
//
// # HTTP Endpoints
//
//   - GET /objects/:bucket/*key : Returns the object as text/plain.
//     404 for a missing bucket or object, 403 for access denied, 400 for an empty key,
//     502 otherwise.
package fetch
