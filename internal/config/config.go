package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	sdkconfig "github.com/Umaima-s-pathan/VR-final/sdk/config"
)

// Backend URL defaults: the deployed origin, and the local dev server.
const (
	DefaultBackendURL = "https://vr-final.onrender.com"
	LocalBackendURL   = "http://localhost:3001"
)

// Config represents the launcher configuration
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Client  ClientConfig  `yaml:"client"`
	Upload  UploadConfig  `yaml:"upload"`
}

// BackendConfig identifies the deployed processing backend
type BackendConfig struct {
	URL string `yaml:"url"` // Backend base URL
}

// ClientConfig holds the upload retry/timeout knobs (seconds)
type ClientConfig struct {
	MaxAttempts          int `yaml:"max_attempts"`           // Total upload attempts per submit
	RetryDelaySeconds    int `yaml:"retry_delay_seconds"`    // Fixed wait between attempts
	WakeTimeoutSeconds   int `yaml:"wake_timeout_seconds"`   // Wake probe timeout
	UploadTimeoutSeconds int `yaml:"upload_timeout_seconds"` // Single upload attempt timeout
}

// UploadConfig holds the local validation constraints
type UploadConfig struct {
	MaxFileSizeMB     int      `yaml:"max_file_size_mb"`   // Maximum payload size
	AllowedExtensions []string `yaml:"allowed_extensions"` // Accepted video containers
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend: BackendConfig{
			URL: DefaultBackendURL,
		},
		Client: ClientConfig{
			MaxAttempts:          3,
			RetryDelaySeconds:    5,
			WakeTimeoutSeconds:   10,
			UploadTimeoutSeconds: 300, // 5 minutes for large files
		},
		Upload: UploadConfig{
			MaxFileSizeMB:     500,
			AllowedExtensions: []string{"mp4", "mov", "avi"},
		},
	}
}

// Load reads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Backend.URL == "" {
		cfg.Backend.URL = defaults.Backend.URL
	}
	if cfg.Client.MaxAttempts == 0 {
		cfg.Client.MaxAttempts = defaults.Client.MaxAttempts
	}
	if cfg.Client.RetryDelaySeconds == 0 {
		cfg.Client.RetryDelaySeconds = defaults.Client.RetryDelaySeconds
	}
	if cfg.Client.WakeTimeoutSeconds == 0 {
		cfg.Client.WakeTimeoutSeconds = defaults.Client.WakeTimeoutSeconds
	}
	if cfg.Client.UploadTimeoutSeconds == 0 {
		cfg.Client.UploadTimeoutSeconds = defaults.Client.UploadTimeoutSeconds
	}
	if cfg.Upload.MaxFileSizeMB == 0 {
		cfg.Upload.MaxFileSizeMB = defaults.Upload.MaxFileSizeMB
	}
	if len(cfg.Upload.AllowedExtensions) == 0 {
		cfg.Upload.AllowedExtensions = defaults.Upload.AllowedExtensions
	}

	return &cfg, nil
}

// Save writes configuration to a file
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}

	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.url must be an absolute http(s) URL")
	}

	if c.Client.MaxAttempts < 1 {
		return fmt.Errorf("client.max_attempts must be at least 1")
	}

	if c.Upload.MaxFileSizeMB < 1 {
		return fmt.Errorf("upload.max_file_size_mb must be at least 1")
	}

	return nil
}

// SDKConfig converts the launcher file config into the SDK config.
func (c *Config) SDKConfig() sdkconfig.Config {
	return sdkconfig.Config{
		Client: sdkconfig.ClientConfig{
			MaxAttempts:   c.Client.MaxAttempts,
			RetryDelay:    time.Duration(c.Client.RetryDelaySeconds) * time.Second,
			WakeTimeout:   time.Duration(c.Client.WakeTimeoutSeconds) * time.Second,
			UploadTimeout: time.Duration(c.Client.UploadTimeoutSeconds) * time.Second,
		},
		Upload: sdkconfig.UploadConfig{
			MaxFileSize:       int64(c.Upload.MaxFileSizeMB) * 1024 * 1024,
			AllowedExtensions: append([]string(nil), c.Upload.AllowedExtensions...),
		},
	}
}
