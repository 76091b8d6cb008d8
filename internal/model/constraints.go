package model

// Domain constants shared across handler, storage, and record packages.
const (
	DefaultSourcePath = "example.txt"
	DefaultObjectKey  = "example.txt"
	RecordTTLHours    = 168 // 7 days
)

// Message templates for the response envelope.
const (
	successMessageFormat = "File uploaded successfully to %s/%s"
	failureMessageFormat = "Error uploading file: %s"
)
