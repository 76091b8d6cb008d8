package model

import (
	"fmt"
	"net/http"
)

// ErrorKind tags the stage that stopped an upload.
type ErrorKind string

const (
	KindNone       ErrorKind = ""
	KindSourceRead ErrorKind = "source_read"
	KindStorage    ErrorKind = "storage"
	KindInternal   ErrorKind = "internal"
)

// Result is the tagged outcome of one upload attempt. A zero Kind means Ok.
type Result struct {
	Kind        ErrorKind
	Message     string
	Err         error
	Request     UploadRequest
	SizeBytes   int64
	ContentType string
}

// Ok builds a successful Result for req.
func Ok(req UploadRequest, size int64, contentType string) Result {
	return Result{
		Message:     fmt.Sprintf(successMessageFormat, req.Bucket, req.Key),
		Request:     req,
		SizeBytes:   size,
		ContentType: contentType,
	}
}

// Err builds a failed Result of the given kind for req.
func Err(kind ErrorKind, req UploadRequest, err error) Result {
	return Result{
		Kind:    kind,
		Message: fmt.Sprintf(failureMessageFormat, err.Error()),
		Err:     err,
		Request: req,
	}
}

// OK reports whether the upload was acknowledged by the storage service.
func (r Result) OK() bool {
	return r.Kind == KindNone
}

// Status returns the UploadRecord status matching r.
func (r Result) Status() string {
	if r.OK() {
		return StatusUploaded
	}
	return StatusFailed
}

// Envelope flattens r into the invoker-facing response.
func (r Result) Envelope() Envelope {
	if r.OK() {
		return NewEnvelope(http.StatusOK, r.Message)
	}
	return NewEnvelope(http.StatusInternalServerError, r.Message)
}
