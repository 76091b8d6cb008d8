package main

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sh3r4rd/example_upload/internal/config"
	uploadstorage "github.com/sh3r4rd/example_upload/internal/storage"
)

func TestNewPutter(t *testing.T) {
	ctx := context.Background()
	awsCfg := aws.Config{Region: "us-east-1"}

	store, err := newPutter(ctx, config.Config{StorageProvider: config.ProviderS3}, awsCfg)
	require.NoError(t, err)
	assert.IsType(t, &uploadstorage.S3Putter{}, store)

	store, err = newPutter(ctx, config.Config{
		StorageProvider: config.ProviderMinio,
		Minio:           config.MinioConfig{Endpoint: "localhost:9000"},
	}, awsCfg)
	require.NoError(t, err)
	assert.IsType(t, &uploadstorage.MinioPutter{}, store)

	_, err = newPutter(ctx, config.Config{StorageProvider: "ftp"}, awsCfg)
	assert.Error(t, err)
}

func TestNewPutterMinioErrorReturnsNilInterface(t *testing.T) {
	store, err := newPutter(context.Background(), config.Config{
		StorageProvider: config.ProviderMinio,
		Minio:           config.MinioConfig{Endpoint: "localhost:9000/some/path"},
	}, aws.Config{})

	require.Error(t, err)
	assert.True(t, store == nil, "store must be a nil interface, got %#v", store)
}
