package storage

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// ProviderS3 names the Amazon S3 backend in errors.
const ProviderS3 = "s3"

// S3API is the subset of the AWS S3 client used here.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ S3API = (*s3.Client)(nil)

// S3Options tune the S3 client built by NewS3.
type S3Options struct {
	Endpoint       string
	ForcePathStyle bool
}

// S3Putter uploads objects with a single PutObject request.
type S3Putter struct {
	client S3API
}

// NewS3 builds an S3Putter from an AWS config. The SDK retryer is capped at one
// attempt so a failed put surfaces immediately.
func NewS3(cfg aws.Config, opts S3Options) *S3Putter {
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.RetryMaxAttempts = 1
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.ForcePathStyle
	})
	return &S3Putter{client: client}
}

// NewS3WithClient wraps an existing S3API, primarily for tests.
func NewS3WithClient(client S3API) *S3Putter {
	return &S3Putter{client: client}
}

// PutObject stores body at bucket/key with one PutObject call.
func (p *S3Putter) PutObject(ctx context.Context, bucket, key string, body io.Reader, size int64, contentType string) error {
	if err := validate(ProviderS3, bucket, key); err != nil {
		return err
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			err = classify(apiErr.ErrorCode(), err)
		}
		return &Error{Provider: ProviderS3, Op: opPutObject, Bucket: bucket, Key: key, Err: err}
	}
	return nil
}
