// Package record writes one audit item per upload attempt to DynamoDB.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"

	"github.com/sh3r4rd/example_upload/internal/logger"
	"github.com/sh3r4rd/example_upload/internal/model"
)

// Recorder persists the outcome of an upload attempt.
type Recorder interface {
	Record(ctx context.Context, result model.Result) error
}

// Nop discards every result. It is used when no audit table is configured.
type Nop struct{}

// Record does nothing.
func (Nop) Record(context.Context, model.Result) error { return nil }

// DynamoAPI is the subset of the DynamoDB client used here.
type DynamoAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoRecorder stores model.UploadRecord items in a DynamoDB table.
type DynamoRecorder struct {
	client DynamoAPI
	table  string
	ttl    time.Duration
	now    func() time.Time
}

// NewDynamo returns a recorder writing to table with a ttlHours expiry; zero disables the TTL.
func NewDynamo(client DynamoAPI, table string, ttlHours int) *DynamoRecorder {
	return &DynamoRecorder{
		client: client,
		table:  table,
		ttl:    time.Duration(ttlHours) * time.Hour,
		now:    time.Now,
	}
}

// Record writes result under the invocation's request id, or a fresh UUID
// outside Lambda.
func (r *DynamoRecorder) Record(ctx context.Context, result model.Result) error {
	now := r.now().UTC()

	id := logger.RequestID(ctx)
	if id == "" {
		id = uuid.NewString()
	}

	item := model.UploadRecord{
		UploadID:    id,
		Bucket:      result.Request.Bucket,
		ObjectKey:   result.Request.Key,
		SourcePath:  result.Request.SourcePath,
		SizeBytes:   result.SizeBytes,
		ContentType: result.ContentType,
		Status:      result.Status(),
		ErrorKind:   string(result.Kind),
		Message:     result.Message,
		CreatedAt:   now.Format(time.RFC3339),
	}
	if r.ttl > 0 {
		item.TTL = now.Add(r.ttl).Unix()
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal upload record: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put upload record %s: %w", id, err)
	}
	return nil
}
