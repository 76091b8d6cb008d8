package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ProviderMinio names the generic S3-compatible backend in errors.
const ProviderMinio = "minio"

// MinioOptions describe a generic S3-compatible endpoint.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// MinioPutter uploads to any S3-compatible service via minio-go.
type MinioPutter struct {
	client *minio.Client
}

// NewMinio builds a MinioPutter whose client makes a single attempt per request.
func NewMinio(opts MinioOptions) (*MinioPutter, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:      credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Region:     opts.Region,
		Secure:     opts.UseSSL,
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioPutter{client: client}, nil
}

// PutObject stores body at bucket/key in one non-multipart request.
func (p *MinioPutter) PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error {
	if err := validate(ProviderMinio, bucket, key); err != nil {
		return err
	}

	_, err := p.client.PutObject(ctx, bucket, key, body, size, minio.PutObjectOptions{
		ContentType:      contentType,
		DisableMultipart: true,
	})
	if err != nil {
		err = classify(string(minio.ToErrorResponse(err).Code), err)
		return &Error{Provider: ProviderMinio, Op: opPutObject, Bucket: bucket, Key: key, Err: err}
	}
	return nil
}
