// Package config loads the upload function's settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sh3r4rd/example_upload/internal/model"
)

// Environment variable names.
const (
	EnvBucketName           = "BUCKET_NAME"
	EnvStorageProvider      = "STORAGE_PROVIDER"
	EnvAWSRegion            = "AWS_REGION"
	EnvS3Endpoint           = "S3_ENDPOINT"
	EnvS3ForcePathStyle     = "S3_FORCE_PATH_STYLE"
	EnvMinioEndpoint        = "MINIO_ENDPOINT"
	EnvMinioAccessKey       = "MINIO_ACCESS_KEY"
	EnvMinioSecretKey       = "MINIO_SECRET_KEY"
	EnvMinioRegion          = "MINIO_REGION"
	EnvMinioUseSSL          = "MINIO_USE_SSL"
	EnvUploadsTableName     = "UPLOADS_TABLE_NAME"
	EnvUploadRecordTTLHours = "UPLOAD_RECORD_TTL_HOURS"
	EnvLogLevel             = "LOG_LEVEL"
)

// Storage providers.
const (
	ProviderS3    = "s3"
	ProviderGCS   = "gcs"
	ProviderMinio = "minio"
)

// S3Config holds the Amazon S3 backend settings.
type S3Config struct {
	Region         string
	Endpoint       string
	ForcePathStyle bool
}

// MinioConfig holds the generic S3-compatible backend settings.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

// Config is passed into the handler at construction time.
type Config struct {
	BucketName      string
	ObjectKey       string
	SourcePath      string
	StorageProvider string
	S3              S3Config
	Minio           MinioConfig
	UploadsTable    string
	RecordTTLHours  int
	LogLevel        string
}

// Load reads an optional .env file and then the process environment.
// A missing BUCKET_NAME is not an error here: the storage call rejects it and the
// handler reports that as a failed upload.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	ttl, err := getEnvInt(EnvUploadRecordTTLHours, model.RecordTTLHours)
	if err != nil {
		return Config{}, err
	}
	forcePathStyle, err := getEnvBool(EnvS3ForcePathStyle, false)
	if err != nil {
		return Config{}, err
	}
	useSSL, err := getEnvBool(EnvMinioUseSSL, true)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BucketName:      strings.TrimSpace(os.Getenv(EnvBucketName)),
		ObjectKey:       model.DefaultObjectKey,
		SourcePath:      model.DefaultSourcePath,
		StorageProvider: strings.ToLower(getEnvString(EnvStorageProvider, ProviderS3)),
		S3: S3Config{
			Region:         os.Getenv(EnvAWSRegion),
			Endpoint:       os.Getenv(EnvS3Endpoint),
			ForcePathStyle: forcePathStyle,
		},
		Minio: MinioConfig{
			Endpoint:  os.Getenv(EnvMinioEndpoint),
			AccessKey: os.Getenv(EnvMinioAccessKey),
			SecretKey: os.Getenv(EnvMinioSecretKey),
			Region:    os.Getenv(EnvMinioRegion),
			UseSSL:    useSSL,
		},
		UploadsTable:   os.Getenv(EnvUploadsTableName),
		RecordTTLHours: ttl,
		LogLevel:       getEnvString(EnvLogLevel, "info"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings needed to build a storage client. The bucket
// name is checked by the storage backend on each put.
func (c Config) Validate() error {
	switch c.StorageProvider {
	case ProviderS3, ProviderGCS:
	case ProviderMinio:
		if c.Minio.Endpoint == "" {
			return fmt.Errorf("config: %s is required for provider %q", EnvMinioEndpoint, ProviderMinio)
		}
	default:
		return fmt.Errorf("config: unknown %s %q", EnvStorageProvider, c.StorageProvider)
	}

	if c.RecordTTLHours < 0 {
		return fmt.Errorf("config: %s must not be negative", EnvUploadRecordTTLHours)
	}
	return nil
}

// Request builds the per-invocation upload request.
func (c Config) Request() model.UploadRequest {
	return model.UploadRequest{
		Bucket:     c.BucketName,
		Key:        c.ObjectKey,
		SourcePath: c.SourcePath,
	}
}

func getEnvString(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
