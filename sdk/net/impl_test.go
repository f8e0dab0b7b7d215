package net_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	stdnet "net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Umaima-s-pathan/VR-final/sdk/net"
)

func encodeTestBody(t *testing.T, filename string, payload []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("video", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("filename", filename))
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadSendsMultipartForm(t *testing.T) {
	var (
		gotFilename string
		gotPayload  []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/upload", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFilename = r.FormValue("filename")

		file, _, err := r.FormFile("video")
		require.NoError(t, err)
		defer file.Close()
		gotPayload, err = io.ReadAll(file)
		require.NoError(t, err)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"jobId":"job-99"}`))
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	body, contentType := encodeTestBody(t, "clip.mp4", []byte("video-bytes"))

	resp, err := backend.Upload(context.Background(), contentType, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"jobId":"job-99"}`, string(resp.Body))
	assert.Equal(t, "clip.mp4", gotFilename)
	assert.Equal(t, []byte("video-bytes"), gotPayload)
}

func TestUploadSurfacesServerErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upload rejected", http.StatusInternalServerError)
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	body, contentType := encodeTestBody(t, "clip.mp4", []byte("video-bytes"))

	resp, err := backend.Upload(context.Background(), contentType, body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "upload rejected\n", string(resp.Body))
}

func TestUploadHonorsContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	body, contentType := encodeTestBody(t, "clip.mp4", []byte("video-bytes"))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := backend.Upload(ctx, contentType, body)
	require.Error(t, err)

	var nerr stdnet.Error
	if errors.As(err, &nerr) {
		assert.True(t, nerr.Timeout())
	} else {
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	}
}

func TestHealthPrefersHealthEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"healthy"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	status, err := backend.Health(context.Background())
	require.NoError(t, err)

	assert.True(t, status.OK)
	assert.False(t, status.ViaFallback)
	assert.Equal(t, http.StatusOK, status.StatusCode)
	assert.JSONEq(t, `{"status":"healthy"}`, string(status.Body))
}

func TestHealthFallsBackToRoot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Palace VR180 backend"))
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	status, err := backend.Health(context.Background())
	require.NoError(t, err)

	assert.True(t, status.OK)
	assert.True(t, status.ViaFallback)
	assert.Equal(t, "Palace VR180 backend", string(status.Body))
}

func TestHealthReportsUnreachableBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // no listener left

	backend := net.NewBackend(server.URL, nil)
	_, err := backend.Health(context.Background())
	assert.Error(t, err)
}

func TestWakeHitsRoot(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	require.NoError(t, backend.Wake(context.Background()))
	assert.Equal(t, "/", gotPath)
}

func TestPreflight(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodOptions, r.Method)
		require.Equal(t, "/api/upload", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	status, err := backend.Preflight(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestProbeStatusAPI(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/status/test", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	backend := net.NewBackend(server.URL, nil)
	status, err := backend.ProbeStatusAPI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}

func TestBaseURLTrimsTrailingSlash(t *testing.T) {
	backend := net.NewBackend("http://localhost:3001/", nil)
	assert.Equal(t, "http://localhost:3001", backend.BaseURL())
}
