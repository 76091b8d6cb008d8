package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

func newTestGCS(t *testing.T, handler http.HandlerFunc) *GCSPutter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := storage.NewClient(context.Background(),
		option.WithoutAuthentication(),
		option.WithEndpoint(srv.URL+"/storage/v1/"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewGCS(client)
}

func TestGCSPutObject(t *testing.T) {
	var (
		calls   atomic.Int32
		gotPath string
		gotBody string
	)
	p := newTestGCS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bucket":"my-bucket","name":"example.txt","contentType":"text/plain","size":"5"}`))
	})

	err := p.PutObject(context.Background(), "my-bucket", "example.txt", strings.NewReader("hello"), 5, "text/plain")
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Contains(t, gotPath, "/b/my-bucket/o")
	// multipart upload: JSON metadata part followed by the media part
	assert.Contains(t, gotBody, `"name":"example.txt"`)
	assert.Contains(t, gotBody, `"contentType":"text/plain"`)
	assert.Contains(t, gotBody, "hello")
}

func TestGCSPutObjectServerErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	p := newTestGCS(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":503,"message":"Backend Error"}}`))
	})

	err := p.PutObject(context.Background(), "my-bucket", "example.txt", strings.NewReader("hello"), 5, "text/plain")
	require.Error(t, err)

	assert.Equal(t, int32(1), calls.Load(), "RetryNever sends the upload once")
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "gcs.PutObject my-bucket/example.txt")
}

func TestGCSPutObjectValidation(t *testing.T) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx, option.WithoutAuthentication())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	p := NewGCS(client)

	err = p.PutObject(ctx, "", "example.txt", strings.NewReader("x"), 1, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBucketName)
	assert.Contains(t, err.Error(), "gcs.PutObject object example.txt")

	err = p.PutObject(ctx, "my-bucket", "", strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, ErrInvalidObjectKey)
}
