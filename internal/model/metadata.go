package model

// UploadRecord represents a single item in the uploads audit DynamoDB table.
type UploadRecord struct {
	UploadID    string `dynamodbav:"uploadId"`
	Bucket      string `dynamodbav:"bucket"`
	ObjectKey   string `dynamodbav:"objectKey"`
	SourcePath  string `dynamodbav:"sourcePath"`
	SizeBytes   int64  `dynamodbav:"sizeBytes"`
	ContentType string `dynamodbav:"contentType"`
	Status      string `dynamodbav:"status"`
	ErrorKind   string `dynamodbav:"errorKind,omitempty"`
	Message     string `dynamodbav:"message"`
	CreatedAt   string `dynamodbav:"createdAt"`
	TTL         int64  `dynamodbav:"ttl"`
}

// Status constants for UploadRecord.Status.
const (
	StatusUploaded = "UPLOADED"
	StatusFailed   = "FAILED"
)
