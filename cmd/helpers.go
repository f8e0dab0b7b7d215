package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Umaima-s-pathan/VR-final/internal/config"
	"github.com/Umaima-s-pathan/VR-final/sdk/log"
	"github.com/Umaima-s-pathan/VR-final/sdk/net"
)

const (
	defaultBaseDir    = ".vr180-launcher"
	defaultConfigFile = "config.yml"
)

// configPath resolves the config file location: the --config flag when
// given, otherwise ~/.vr180-launcher/config.yml.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, defaultBaseDir, defaultConfigFile), nil
}

// loadConfig loads the launcher config, falling back to defaults when no
// config file exists yet. The --backend flag overrides the file.
func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	var cfg *config.Config
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if backendURL != "" {
		cfg.Backend.URL = backendURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newLogger() (log.Logger, error) {
	return log.NewZapLogger(debugMode)
}

func newBackend(cfg *config.Config, logger log.Logger) net.Backend {
	return net.NewBackend(cfg.Backend.URL, logger)
}
