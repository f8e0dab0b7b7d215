package event

// EventDataKey defines standard keys used in event data
type EventDataKey string

const (
	// Common data keys
	KeyError   EventDataKey = "error"
	KeyMessage EventDataKey = "message"

	// Attempt keys
	KeyAttempt     EventDataKey = "attempt"
	KeyMaxAttempts EventDataKey = "max_attempts"
	KeyDelay       EventDataKey = "delay"
	KeyOutcome     EventDataKey = "outcome"

	// Upload result keys
	KeyJobID      EventDataKey = "job_id"
	KeyHTTPStatus EventDataKey = "http_status"
	KeyBytesTotal EventDataKey = "bytes_total"
	KeyBackend    EventDataKey = "backend"
)
