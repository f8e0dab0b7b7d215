package config

import "time"

// File size limit enforced locally before any network call.
const DefaultMaxFileSize = 500 * 1024 * 1024 // 500 MiB

// Config carries the SDK settings for talking to the VR180 backend.
type Config struct {
	Client ClientConfig
	Upload UploadConfig
}

// ClientConfig bounds the wake/upload/retry behavior of a single submit.
// Worst-case wait is (WakeTimeout + UploadTimeout) * MaxAttempts plus
// (MaxAttempts - 1) * RetryDelay.
type ClientConfig struct {
	// MaxAttempts is the total number of upload attempts, including the
	// first one.
	MaxAttempts int

	// RetryDelay is the fixed wait between attempts after a transport
	// failure.
	RetryDelay time.Duration

	// WakeTimeout bounds the advisory wake probe. Keep this short: the
	// probe only nudges a scale-to-zero backend and never blocks the
	// upload itself.
	WakeTimeout time.Duration

	// UploadTimeout bounds a single multipart upload attempt. It must
	// cover full payload transfer for large files on slow links.
	UploadTimeout time.Duration
}

// UploadConfig holds the local validation constraints.
type UploadConfig struct {
	MaxFileSize       int64
	AllowedExtensions []string
}

// DefaultConfig returns the settings observed in production: 3 attempts,
// 5s retry delay, 10s wake timeout, 5m upload timeout, 500 MiB limit and
// the accepted video containers.
func DefaultConfig() Config {
	return Config{
		Client: ClientConfig{
			MaxAttempts:   3,
			RetryDelay:    5 * time.Second,
			WakeTimeout:   10 * time.Second,
			UploadTimeout: 300 * time.Second,
		},
		Upload: UploadConfig{
			MaxFileSize:       DefaultMaxFileSize,
			AllowedExtensions: []string{"mp4", "mov", "avi"},
		},
	}
}
