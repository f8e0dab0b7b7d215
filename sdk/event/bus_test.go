package event_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Umaima-s-pathan/VR-final/sdk/event"
)

func TestBusDeliversToTypeSpecificHandlers(t *testing.T) {
	bus := event.NewBus(nil, 4)

	var attempts, retries int32
	bus.Subscribe(event.AttemptStarted, func(e event.Event) {
		atomic.AddInt32(&attempts, 1)
	})
	bus.Subscribe(event.RetryScheduled, func(e event.Event) {
		atomic.AddInt32(&retries, 1)
	})

	bus.Publish(event.NewEvent(event.AttemptStarted, "u1", "clip.mp4", nil))
	bus.Publish(event.NewEvent(event.AttemptStarted, "u1", "clip.mp4", nil))
	bus.Publish(event.NewEvent(event.RetryScheduled, "u1", "clip.mp4", nil))
	bus.Close()

	assert.Equal(t, int32(2), atomic.LoadInt32(&attempts))
	assert.Equal(t, int32(1), atomic.LoadInt32(&retries))
}

func TestBusDeliversToWildcardHandlers(t *testing.T) {
	bus := event.NewBus(nil, 4)

	var all int32
	bus.SubscribeAll(func(e event.Event) {
		atomic.AddInt32(&all, 1)
	})

	bus.Publish(event.NewEvent(event.UploadStarted, "u1", "clip.mp4", nil))
	bus.Publish(event.NewEvent(event.UploadSucceeded, "u1", "clip.mp4", nil))
	bus.Close()

	assert.Equal(t, int32(2), atomic.LoadInt32(&all))
}

func TestBusHandlersGetEventCopies(t *testing.T) {
	bus := event.NewBus(nil, 4)

	done := make(chan event.Event, 1)
	bus.Subscribe(event.UploadSucceeded, func(e event.Event) {
		// Mutating the received event must not affect the publisher's copy.
		e.Data[event.KeyJobID] = "mutated"
		done <- e
	})

	original := event.NewEvent(event.UploadSucceeded, "u1", "clip.mp4", event.EventData{
		event.KeyJobID: "job-1",
	})
	bus.Publish(original)
	<-done
	bus.Close()

	assert.Equal(t, "job-1", original.Data[event.KeyJobID])
}

func TestBusRecoversFromPanickingHandler(t *testing.T) {
	bus := event.NewBus(nil, 4)

	var delivered int32
	bus.Subscribe(event.UploadFailed, func(e event.Event) {
		panic("handler exploded")
	})
	bus.Subscribe(event.UploadFailed, func(e event.Event) {
		atomic.AddInt32(&delivered, 1)
	})

	bus.Publish(event.NewEvent(event.UploadFailed, "u1", "clip.mp4", nil))
	bus.Close()

	// The panicking handler must not take down the bus or its siblings.
	assert.Equal(t, int32(1), atomic.LoadInt32(&delivered))
}
