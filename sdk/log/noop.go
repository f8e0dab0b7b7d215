package log

import "context"

// noopLogger discards all log output. It is the default when a caller
// passes a nil logger.
type noopLogger struct{}

// NewNoopLogger returns a logger that drops everything.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(ctx context.Context, msg string, keysAndValues ...interface{}) {}
func (l *noopLogger) Info(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Warn(ctx context.Context, msg string, keysAndValues ...interface{})  {}
func (l *noopLogger) Error(ctx context.Context, msg string, keysAndValues ...interface{}) {}
