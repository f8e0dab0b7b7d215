package net

import (
	"context"
	"io"
)

// Response is a raw backend reply: the HTTP status and the body bytes.
// Interpretation of the status (success vs server error) happens in the
// upload client, not here.
type Response struct {
	StatusCode int
	Body       []byte
}

// HealthStatus reports the outcome of the backend health probe.
type HealthStatus struct {
	// OK is true when either /api/health or the root fallback answered 200.
	OK bool
	// StatusCode is the status of whichever endpoint answered.
	StatusCode int
	// ViaFallback is true when /api/health was unavailable and the root
	// endpoint was used as the liveness signal instead.
	ViaFallback bool
	// Body is the raw body of the answering endpoint.
	Body []byte
}

// Backend is the transport interface to the VR180 processing backend.
type Backend interface {
	// Wake issues a lightweight GET to the backend root. It exists to
	// nudge a scale-to-zero deployment awake before an expensive upload.
	Wake(ctx context.Context) error

	// Upload POSTs a multipart job-creation request. Transport errors are
	// returned as-is so the caller can classify timeout vs connection
	// failure; any HTTP response is returned without status interpretation.
	Upload(ctx context.Context, contentType string, body io.Reader) (*Response, error)

	// Health probes GET /api/health, falling back to GET / when the
	// health path is unavailable.
	Health(ctx context.Context) (*HealthStatus, error)

	// Root fetches the backend root page.
	Root(ctx context.Context) (*Response, error)

	// Preflight issues the CORS preflight OPTIONS request against the
	// upload endpoint. Diagnostic only.
	Preflight(ctx context.Context) (int, error)

	// ProbeStatusAPI checks the job-status API with a throwaway job id.
	ProbeStatusAPI(ctx context.Context) (int, error)

	// BaseURL returns the backend origin this client talks to.
	BaseURL() string
}
