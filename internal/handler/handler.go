// Package handler implements the upload function: stream one local file to
// object storage and report the outcome as a response envelope.
package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/sh3r4rd/example_upload/internal/config"
	"github.com/sh3r4rd/example_upload/internal/model"
	"github.com/sh3r4rd/example_upload/internal/record"
	"github.com/sh3r4rd/example_upload/internal/source"
	"github.com/sh3r4rd/example_upload/internal/storage"
)

// Handler is safe for concurrent invocations; it holds no per-call state.
type Handler struct {
	cfg      config.Config
	fs       afero.Fs
	store    storage.Putter
	recorder record.Recorder
	log      *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithRecorder sets the audit recorder. Defaults to record.Nop.
func WithRecorder(r record.Recorder) Option {
	return func(h *Handler) {
		if r != nil {
			h.recorder = r
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// New builds a Handler reading from fsys and uploading through store.
func New(cfg config.Config, fsys afero.Fs, store storage.Putter, opts ...Option) *Handler {
	h := &Handler{
		cfg:      cfg,
		fs:       fsys,
		store:    store,
		recorder: record.Nop{},
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle is the Lambda entry point. The event is accepted but not inspected.
// The returned error is always nil: every failure is reported in the envelope.
func (h *Handler) Handle(ctx context.Context, _ json.RawMessage) (model.Envelope, error) {
	req := h.cfg.Request()

	result := h.safeUpload(ctx, req)
	h.report(ctx, result)

	return result.Envelope(), nil
}

// safeUpload runs Upload and turns a panic into a failed Result.
func (h *Handler) safeUpload(ctx context.Context, req model.UploadRequest) (result model.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = model.Err(model.KindInternal, req, fmt.Errorf("panic: %v", r))
		}
	}()
	return h.Upload(ctx, req)
}

// Upload makes one attempt to store req.SourcePath at req.Bucket/req.Key.
func (h *Handler) Upload(ctx context.Context, req model.UploadRequest) model.Result {
	f, err := source.Open(h.fs, req.SourcePath)
	if err != nil {
		return model.Err(model.KindSourceRead, req, err)
	}
	defer f.Close()

	body := &trackingReader{r: f}
	if err := h.store.PutObject(ctx, req.Bucket, req.Key, body, f.Size, f.ContentType); err != nil {
		kind := model.KindStorage
		// a read failure mid-stream surfaces through the storage call
		if body.err != nil {
			kind, err = model.KindSourceRead, body.err
		}
		result := model.Err(kind, req, err)
		result.SizeBytes, result.ContentType = f.Size, f.ContentType
		return result
	}

	return model.Ok(req, f.Size, f.ContentType)
}

func (h *Handler) report(ctx context.Context, result model.Result) {
	attrs := []any{
		"bucket", result.Request.Bucket,
		"key", result.Request.Key,
		"size_bytes", result.SizeBytes,
		"content_type", result.ContentType,
	}
	if result.OK() {
		h.log.InfoContext(ctx, result.Message, attrs...)
	} else {
		attrs = append(attrs, "error_kind", string(result.Kind), "error", result.Err)
		h.log.ErrorContext(ctx, result.Message, attrs...)
	}

	if err := h.record(ctx, result); err != nil {
		h.log.WarnContext(ctx, "failed to record upload", "error", err)
	}
}

// record never lets the recorder alter the outcome of an upload.
func (h *Handler) record(ctx context.Context, result model.Result) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recorder panic: %v", r)
		}
	}()
	return h.recorder.Record(ctx, result)
}

// trackingReader remembers the first non-EOF read error of the source file.
type trackingReader struct {
	r   io.ReadSeeker
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

func (t *trackingReader) Seek(offset int64, whence int) (int64, error) {
	return t.r.Seek(offset, whence)
}
