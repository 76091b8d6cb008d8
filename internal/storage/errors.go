package storage

import (
	"errors"
	"fmt"
)

const opPutObject = "PutObject"

// Error represents a storage operation error with context about the call that failed.
type Error struct {
	// Provider is the backend name ("s3", "gcs", "minio")
	Provider string

	// Op is the operation that failed
	Op string

	Bucket string
	Key    string

	// Err is the underlying error, possibly joined with a sentinel below
	Err error
}

// Error formats the provider, operation and object with the underlying error.
func (e *Error) Error() string {
	if e.Bucket != "" && e.Key != "" {
		return fmt.Sprintf("%s.%s %s/%s: %v", e.Provider, e.Op, e.Bucket, e.Key, e.Err)
	}
	if e.Bucket != "" {
		return fmt.Sprintf("%s.%s bucket %s: %v", e.Provider, e.Op, e.Bucket, e.Err)
	}
	if e.Key != "" {
		return fmt.Sprintf("%s.%s object %s: %v", e.Provider, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s.%s: %v", e.Provider, e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors for common put failures, usable with errors.Is.
var (
	ErrInvalidBucketName = errors.New("storage: invalid bucket name")
	ErrInvalidObjectKey  = errors.New("storage: invalid object key")
	ErrBucketNotFound    = errors.New("storage: bucket not found")
	ErrAccessDenied      = errors.New("storage: access denied")
	ErrTooManyRequests   = errors.New("storage: too many requests")
	ErrUnavailable       = errors.New("storage: service unavailable")
)

// classify tags err with the sentinel matching a provider error code, keeping
// the provider's own message in the chain.
func classify(code string, err error) error {
	var sentinel error
	switch code {
	case "AccessDenied", "Forbidden", "403":
		sentinel = ErrAccessDenied
	case "NoSuchBucket", "NotFound", "404":
		sentinel = ErrBucketNotFound
	case "InvalidBucketName":
		sentinel = ErrInvalidBucketName
	case "SlowDown", "TooManyRequests", "429":
		sentinel = ErrTooManyRequests
	case "InternalError", "ServiceUnavailable", "500", "502", "503", "504":
		sentinel = ErrUnavailable
	}
	if sentinel == nil {
		return err
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

// IsAccessDenied checks if an error indicates access was denied.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsUnavailable checks if an error indicates a server-side failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsBucketNotFound checks if an error indicates that a bucket was not found.
func IsBucketNotFound(err error) bool {
	return errors.Is(err, ErrBucketNotFound)
}
