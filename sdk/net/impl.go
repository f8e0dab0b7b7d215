package net

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Umaima-s-pathan/VR-final/sdk/log"
)

// Backend API paths.
const (
	healthPath    = "/api/health"
	uploadPath    = "/api/upload"
	statusAPIPath = "/api/status/test"
)

const userAgent = "vr180-launcher"

// httpBackend implements Backend over plain HTTP. Per-call deadlines are
// supplied by the caller through the context; the underlying http.Client
// carries no timeout of its own so long uploads are not cut short.
type httpBackend struct {
	baseURL    string
	httpClient *http.Client
	logger     log.Logger
}

// NewBackend creates a Backend for the given base URL, e.g.
// "https://vr-final.onrender.com" or "http://localhost:3001".
func NewBackend(baseURL string, logger log.Logger) Backend {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &httpBackend{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (b *httpBackend) BaseURL() string {
	return b.baseURL
}

func (b *httpBackend) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

// Wake nudges the backend root. The response body is discarded; only
// reachability matters here.
func (b *httpBackend) Wake(ctx context.Context) error {
	req, err := b.newRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return err
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)
	b.logger.Debug(ctx, "wake probe answered", "status", resp.StatusCode)
	return nil
}

func (b *httpBackend) Upload(ctx context.Context, contentType string, body io.Reader) (*Response, error) {
	req, err := b.newRequest(ctx, http.MethodPost, uploadPath, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		// Raw transport error: the upload client classifies it.
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// Health checks /api/health first and falls back to the root endpoint
// when the health path is unavailable.
func (b *httpBackend) Health(ctx context.Context) (*HealthStatus, error) {
	if resp, err := b.get(ctx, healthPath); err == nil {
		if resp.StatusCode == http.StatusOK {
			return &HealthStatus{OK: true, StatusCode: resp.StatusCode, Body: resp.Body}, nil
		}
		b.logger.Debug(ctx, "health endpoint unavailable, falling back to root", "status", resp.StatusCode)
	} else {
		b.logger.Debug(ctx, "health endpoint unreachable, falling back to root", "error", err.Error())
	}

	resp, err := b.get(ctx, "/")
	if err != nil {
		return nil, err
	}
	return &HealthStatus{
		OK:          resp.StatusCode == http.StatusOK,
		StatusCode:  resp.StatusCode,
		ViaFallback: true,
		Body:        resp.Body,
	}, nil
}

func (b *httpBackend) Root(ctx context.Context) (*Response, error) {
	return b.get(ctx, "/")
}

func (b *httpBackend) Preflight(ctx context.Context) (int, error) {
	req, err := b.newRequest(ctx, http.MethodOptions, uploadPath, nil)
	if err != nil {
		return 0, err
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}

func (b *httpBackend) ProbeStatusAPI(ctx context.Context) (int, error) {
	resp, err := b.get(ctx, statusAPIPath)
	if err != nil {
		return 0, err
	}
	return resp.StatusCode, nil
}

func (b *httpBackend) get(ctx context.Context, path string) (*Response, error) {
	req, err := b.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}
