package storage

import (
	"context"
	"errors"
	"io"
	"strconv"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// ProviderGCS names the Google Cloud Storage backend in errors.
const ProviderGCS = "gcs"

// GCSPutter uploads objects through a storage.Writer.
type GCSPutter struct {
	client *storage.Client
}

// NewGCS wraps an existing GCS client.
func NewGCS(client *storage.Client) *GCSPutter {
	return &GCSPutter{client: client}
}

// PutObject streams body to bucket/key in a single, non-retried request.
func (p *GCSPutter) PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error {
	if err := validate(ProviderGCS, bucket, key); err != nil {
		return err
	}

	// cancelling ctx aborts the writer if the copy fails
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	obj := p.client.Bucket(bucket).Object(key).Retryer(storage.WithPolicy(storage.RetryNever))
	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	// one request for the whole object
	w.ChunkSize = 0

	if _, err := io.Copy(w, body); err != nil {
		cancel()
		_ = w.Close()
		return p.wrap(bucket, key, err)
	}
	if err := w.Close(); err != nil {
		return p.wrap(bucket, key, err)
	}
	return nil
}

func (p *GCSPutter) wrap(bucket, key string, err error) error {
	var gErr *googleapi.Error
	switch {
	case errors.Is(err, storage.ErrBucketNotExist):
		err = classify("NoSuchBucket", err)
	case errors.As(err, &gErr):
		err = classify(strconv.Itoa(gErr.Code), err)
	}
	return &Error{Provider: ProviderGCS, Op: opPutObject, Bucket: bucket, Key: key, Err: err}
}
