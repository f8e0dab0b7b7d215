package event

import "time"

// EventType represents the type of event
type EventType string

// Event types constants
const (
	// Upload lifecycle events
	UploadStarted          EventType = "upload.started"
	UploadValidationFailed EventType = "upload.validation_failed"
	UploadSucceeded        EventType = "upload.succeeded"
	UploadServerError      EventType = "upload.server_error"
	UploadFailed           EventType = "upload.failed"

	// Attempt lifecycle events
	AttemptStarted EventType = "upload.attempt"
	RetryScheduled EventType = "upload.retry"

	// Wake probe events
	WakeSucceeded EventType = "wake.succeeded"
	WakeFailed    EventType = "wake.failed"
)

// Event represents an event emitted by the upload client
type Event struct {
	Type      EventType // Type of event
	UploadID  string    // Correlation ID of the upload that emitted the event
	Filename  string    // Name of the file being uploaded
	Timestamp time.Time // When the event occurred
	Data      EventData // Additional contextual data
}

// EventData carries contextual key/value data on an event
type EventData map[EventDataKey]interface{}

func NewEvent(eventType EventType, uploadID, filename string, data EventData) Event {
	if data == nil {
		data = make(EventData)
	}

	return Event{
		Type:      eventType,
		UploadID:  uploadID,
		Filename:  filename,
		Timestamp: time.Now(),
		Data:      data,
	}
}
