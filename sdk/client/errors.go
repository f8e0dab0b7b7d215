package client

import (
	"context"
	"errors"
	"fmt"
	gonet "net"
)

// Validation sentinels, wrapped by ValidationError.
var (
	ErrEmptyFilename   = errors.New("filename is required")
	ErrFileTooLarge    = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

// ValidationError means the request was rejected locally; no network
// call was made.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid upload request: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NetworkKind distinguishes why the backend was unreachable.
type NetworkKind string

const (
	NetworkTimeout         NetworkKind = "timeout"
	NetworkConnectionError NetworkKind = "connection_error"
)

// NetworkError means every attempt failed at the transport level; it is
// only returned once retries are exhausted. Trail records each attempt
// and the backoff waits between them.
type NetworkError struct {
	Kind     NetworkKind
	Attempts int
	Trail    []Attempt
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("backend unreachable (%s) after %d attempts: %v", e.Kind, e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerError means the backend was reachable but rejected or failed the
// job. It is surfaced on the UploadResult, never as a Submit error, and
// is deliberately not retried: only unreachability is retryable.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("backend rejected upload (status %d): %s", e.Status, e.Body)
}

// classifyTransport maps a transport-level failure to a NetworkKind.
// Deadline expiry counts as a timeout; everything else (refused,
// reset, DNS failure) is a connection error.
func classifyTransport(err error) NetworkKind {
	if errors.Is(err, context.DeadlineExceeded) {
		return NetworkTimeout
	}

	var nerr gonet.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return NetworkTimeout
	}

	return NetworkConnectionError
}

func outcomeForKind(kind NetworkKind) Outcome {
	if kind == NetworkTimeout {
		return OutcomeTimeout
	}
	return OutcomeConnectionError
}
