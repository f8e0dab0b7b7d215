package client

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/Umaima-s-pathan/VR-final/sdk/config"
	"github.com/Umaima-s-pathan/VR-final/sdk/event"
	"github.com/Umaima-s-pathan/VR-final/sdk/log"
	"github.com/Umaima-s-pathan/VR-final/sdk/net"
)

// Client submits video-processing jobs to the backend.
type Client interface {
	// Submit uploads a file as a job-creation request. It returns a
	// ValidationError before any network call for bad local input, a
	// NetworkError once retries are exhausted, and otherwise the terminal
	// UploadResult: any HTTP response, success or not, ends the retry loop.
	Submit(ctx context.Context, req UploadRequest) (*UploadResult, error)

	SubscribeToEvents(eventType event.EventType, handler event.Handler)

	SubscribeToAllEvents(handler event.Handler)

	// Close waits for outstanding event handlers to finish.
	Close()
}

type ClientImpl struct {
	config  config.Config
	backend net.Backend
	logger  log.Logger
	bus     *event.Bus
}

func NewClient(cfg config.Config, backend net.Backend, logger log.Logger) (Client, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}

	defaults := config.DefaultConfig()
	if cfg.Client.MaxAttempts <= 0 {
		cfg.Client.MaxAttempts = defaults.Client.MaxAttempts
	}
	if cfg.Client.RetryDelay <= 0 {
		cfg.Client.RetryDelay = defaults.Client.RetryDelay
	}
	if cfg.Client.WakeTimeout <= 0 {
		cfg.Client.WakeTimeout = defaults.Client.WakeTimeout
	}
	if cfg.Client.UploadTimeout <= 0 {
		cfg.Client.UploadTimeout = defaults.Client.UploadTimeout
	}

	return &ClientImpl{
		config:  cfg,
		backend: backend,
		logger:  logger,
		bus:     event.NewBus(logger, 10),
	}, nil
}

func (c *ClientImpl) Submit(ctx context.Context, req UploadRequest) (*UploadResult, error) {
	uploadID := uuid.New().String()

	if err := req.validate(c.config.Upload); err != nil {
		c.logger.Error(ctx, "upload request rejected", "uploadID", uploadID, "filename", req.Filename, "error", err.Error())
		c.emit(uploadID, req.Filename, event.UploadValidationFailed, event.EventData{event.KeyError: err.Error()})
		return nil, &ValidationError{Err: err}
	}

	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode upload request: %w", err)
	}

	maxAttempts := c.config.Client.MaxAttempts
	c.logger.Info(ctx, "starting upload",
		"uploadID", uploadID,
		"filename", req.Filename,
		"bytes", len(req.Data),
		"backend", c.backend.BaseURL(),
		"maxAttempts", maxAttempts)
	c.emit(uploadID, req.Filename, event.UploadStarted, event.EventData{
		event.KeyBytesTotal:  len(req.Data),
		event.KeyBackend:     c.backend.BaseURL(),
		event.KeyMaxAttempts: maxAttempts,
	})

	var (
		attempt  int
		trail    []Attempt
		result   *UploadResult
		lastKind NetworkKind
		lastErr  error
	)

	// Bounded loop with a fixed delay: retry only on transport failure.
	// A reachable backend is terminal whatever it answered; retrying a
	// 5xx would re-transfer the full payload for a job the server
	// already saw.
	operation := func() error {
		attempt++
		c.logger.Info(ctx, "upload attempt", "uploadID", uploadID, "attempt", attempt, "maxAttempts", maxAttempts)
		c.emit(uploadID, req.Filename, event.AttemptStarted, event.EventData{
			event.KeyAttempt:     attempt,
			event.KeyMaxAttempts: maxAttempts,
		})

		c.wake(ctx, uploadID, req.Filename)

		uploadCtx, cancel := context.WithTimeout(ctx, c.config.Client.UploadTimeout)
		resp, err := c.backend.Upload(uploadCtx, contentType, bytes.NewReader(body))
		cancel()
		if err != nil {
			lastKind = classifyTransport(err)
			lastErr = err
			trail = append(trail, Attempt{Number: attempt, Outcome: outcomeForKind(lastKind)})
			return err
		}

		outcome := OutcomeSuccess
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			outcome = OutcomeServerError
		}
		trail = append(trail, Attempt{Number: attempt, Outcome: outcome})
		result = newResult(uploadID, resp, attempt, trail)
		return nil
	}

	notify := func(err error, wait time.Duration) {
		trail[len(trail)-1].WaitBeforeNext = wait
		c.logger.Warn(ctx, "upload attempt failed, retrying",
			"uploadID", uploadID,
			"attempt", attempt,
			"maxAttempts", maxAttempts,
			"retryIn", wait,
			"error", err.Error())
		c.emit(uploadID, req.Filename, event.RetryScheduled, event.EventData{
			event.KeyAttempt:     attempt,
			event.KeyMaxAttempts: maxAttempts,
			event.KeyDelay:       wait,
			event.KeyError:       err.Error(),
		})
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(c.config.Client.RetryDelay), uint64(maxAttempts-1)),
		ctx)

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if lastErr == nil {
			lastErr = err
		}
		nerr := &NetworkError{Kind: lastKind, Attempts: attempt, Trail: trail, Err: lastErr}
		c.logger.Error(ctx, "upload failed, backend unreachable",
			"uploadID", uploadID,
			"attempts", attempt,
			"kind", string(lastKind),
			"error", lastErr.Error())
		c.emit(uploadID, req.Filename, event.UploadFailed, event.EventData{
			event.KeyAttempt: attempt,
			event.KeyOutcome: string(outcomeForKind(lastKind)),
			event.KeyError:   lastErr.Error(),
		})
		return nil, nerr
	}

	if result.Success() {
		c.logger.Info(ctx, "upload succeeded",
			"uploadID", uploadID,
			"jobID", result.JobID,
			"status", result.HTTPStatus,
			"attempt", result.Attempt)
		c.emit(uploadID, req.Filename, event.UploadSucceeded, event.EventData{
			event.KeyJobID:      result.JobID,
			event.KeyHTTPStatus: result.HTTPStatus,
			event.KeyAttempt:    result.Attempt,
		})
	} else {
		c.logger.Warn(ctx, "upload rejected by backend",
			"uploadID", uploadID,
			"status", result.HTTPStatus,
			"attempt", result.Attempt)
		c.emit(uploadID, req.Filename, event.UploadServerError, event.EventData{
			event.KeyHTTPStatus: result.HTTPStatus,
			event.KeyAttempt:    result.Attempt,
		})
	}

	return result, nil
}

// wake nudges a possibly cold-started backend before the expensive
// multipart request. Its outcome is advisory: failure is reported but
// never aborts the attempt.
func (c *ClientImpl) wake(ctx context.Context, uploadID, filename string) {
	wakeCtx, cancel := context.WithTimeout(ctx, c.config.Client.WakeTimeout)
	defer cancel()

	if err := c.backend.Wake(wakeCtx); err != nil {
		c.logger.Warn(ctx, "wake probe failed, backend may be cold-starting", "uploadID", uploadID, "error", err.Error())
		c.emit(uploadID, filename, event.WakeFailed, event.EventData{event.KeyError: err.Error()})
		return
	}

	c.logger.Debug(ctx, "backend is awake", "uploadID", uploadID)
	c.emit(uploadID, filename, event.WakeSucceeded, nil)
}

func (c *ClientImpl) emit(uploadID, filename string, eventType event.EventType, data event.EventData) {
	c.bus.Publish(event.NewEvent(eventType, uploadID, filename, data))
}

// SubscribeToEvents registers a handler for specific event types
func (c *ClientImpl) SubscribeToEvents(eventType event.EventType, handler event.Handler) {
	c.bus.Subscribe(eventType, handler)
}

// SubscribeToAllEvents registers a handler for all events
func (c *ClientImpl) SubscribeToAllEvents(handler event.Handler) {
	c.bus.SubscribeAll(handler)
}

func (c *ClientImpl) Close() {
	c.bus.Close()
}
