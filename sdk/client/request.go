package client

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Umaima-s-pathan/VR-final/sdk/config"
	"github.com/Umaima-s-pathan/VR-final/sdk/net"
)

// UploadRequest is a single job-creation request: the video payload and
// its filename. The destination backend is fixed on the client.
type UploadRequest struct {
	Filename string
	Data     []byte
}

// Outcome classifies how a single attempt ended.
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeTimeout         Outcome = "timeout"
	OutcomeConnectionError Outcome = "connection_error"
	OutcomeServerError     Outcome = "server_error"
)

// Attempt records one upload attempt. WaitBeforeNext is zero on the
// terminal attempt.
type Attempt struct {
	Number         int
	Outcome        Outcome
	WaitBeforeNext time.Duration
}

// UploadResult is the terminal outcome of a submit that reached the
// backend. It is immutable once returned. A non-2xx status is data here,
// not an error: callers branch on Success / ServerError.
type UploadResult struct {
	UploadID   string
	JobID      string
	HTTPStatus int
	RawBody    string
	Attempt    int
	Attempts   []Attempt
}

// Success reports whether the backend accepted the job.
func (r *UploadResult) Success() bool {
	return r.HTTPStatus >= 200 && r.HTTPStatus < 300
}

// ServerError returns the backend rejection as a ServerError, or nil on
// success.
func (r *UploadResult) ServerError() *ServerError {
	if r.Success() {
		return nil
	}
	return &ServerError{Status: r.HTTPStatus, Body: r.RawBody}
}

func newResult(uploadID string, resp *net.Response, attempt int, trail []Attempt) *UploadResult {
	result := &UploadResult{
		UploadID:   uploadID,
		HTTPStatus: resp.StatusCode,
		RawBody:    string(resp.Body),
		Attempt:    attempt,
		Attempts:   trail,
	}

	if result.Success() {
		var payload struct {
			JobID string `json:"jobId"`
		}
		if err := json.Unmarshal(resp.Body, &payload); err == nil {
			result.JobID = payload.JobID
		}
	}

	return result
}

// validate applies the local constraints. It must not touch the network:
// a request that fails here is rejected before any call is made.
func (r UploadRequest) validate(cfg config.UploadConfig) error {
	if strings.TrimSpace(r.Filename) == "" {
		return ErrEmptyFilename
	}

	// Empty AllowedExtensions means the caller opted out of type checks.
	if len(cfg.AllowedExtensions) > 0 {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(r.Filename)), ".")
		if !containsExtension(cfg.AllowedExtensions, ext) {
			return fmt.Errorf("%w: %q (accepted: %s)", ErrUnsupportedType, ext, strings.Join(cfg.AllowedExtensions, ", "))
		}
	}

	if cfg.MaxFileSize > 0 && int64(len(r.Data)) > cfg.MaxFileSize {
		return fmt.Errorf("%w: %d bytes exceeds maximum of %d", ErrFileTooLarge, len(r.Data), cfg.MaxFileSize)
	}

	return nil
}

func containsExtension(allowed []string, ext string) bool {
	for _, a := range allowed {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}
