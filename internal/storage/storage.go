// Package storage provides the single "put object" capability the upload
// handler consumes, with backends for Amazon S3, Google Cloud Storage and
// generic S3-compatible services.
package storage

import (
	"context"
	"io"
	"strings"
)

// Putter stores one object. Implementations make exactly one attempt and must be
// safe for concurrent use; they hold no per-call state.
type Putter interface {
	PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error
}

// validate rejects requests that can never succeed before any network call.
func validate(provider, bucket, key string) error {
	if strings.TrimSpace(bucket) == "" {
		return &Error{Provider: provider, Op: opPutObject, Key: key, Err: ErrInvalidBucketName}
	}
	if key == "" {
		return &Error{Provider: provider, Op: opPutObject, Bucket: bucket, Err: ErrInvalidObjectKey}
	}
	return nil
}
