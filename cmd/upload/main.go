package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/spf13/afero"

	"github.com/sh3r4rd/example_upload/internal/config"
	"github.com/sh3r4rd/example_upload/internal/handler"
	"github.com/sh3r4rd/example_upload/internal/logger"
	"github.com/sh3r4rd/example_upload/internal/record"
	uploadstorage "github.com/sh3r4rd/example_upload/internal/storage"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.LogLevel)
	slog.SetDefault(log)

	if cfg.BucketName == "" {
		log.Warn(config.EnvBucketName + " is not set; uploads will fail")
	}

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		log.Error("failed to load aws config", "error", err)
		os.Exit(1)
	}

	store, err := newPutter(ctx, cfg, awsCfg)
	if err != nil {
		log.Error("failed to create storage client", "provider", cfg.StorageProvider, "error", err)
		os.Exit(1)
	}

	opts := []handler.Option{handler.WithLogger(log)}
	if cfg.UploadsTable != "" {
		rec := record.NewDynamo(dynamodb.NewFromConfig(awsCfg), cfg.UploadsTable, cfg.RecordTTLHours)
		opts = append(opts, handler.WithRecorder(rec))
	}

	h := handler.New(cfg, afero.NewOsFs(), store, opts...)

	log.Info("upload function ready", "provider", cfg.StorageProvider, "bucket", cfg.BucketName, "key", cfg.ObjectKey)
	lambda.Start(h.Handle)
}

// loadAWSConfig loads the default credential chain with SDK retries capped at a
// single attempt.
func loadAWSConfig(ctx context.Context, cfg config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRetryMaxAttempts(1),
	}
	if cfg.S3.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.S3.Region))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func newPutter(ctx context.Context, cfg config.Config, awsCfg aws.Config) (uploadstorage.Putter, error) {
	switch cfg.StorageProvider {
	case config.ProviderS3:
		return uploadstorage.NewS3(awsCfg, uploadstorage.S3Options{
			Endpoint:       cfg.S3.Endpoint,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		}), nil
	case config.ProviderGCS:
		client, err := storage.NewClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create gcs client: %w", err)
		}
		return uploadstorage.NewGCS(client), nil
	case config.ProviderMinio:
		store, err := uploadstorage.NewMinio(uploadstorage.MinioOptions{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Region:    cfg.Minio.Region,
			UseSSL:    cfg.Minio.UseSSL,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.StorageProvider)
	}
}
