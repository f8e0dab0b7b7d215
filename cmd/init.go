package cmd

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/Umaima-s-pathan/VR-final/internal/config"
)

var forceInit bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the launcher configuration",
	Long: `Initialize the launcher by creating a configuration file.

This command will guide you through an interactive setup process to:
1. Create a config.yml file at ~/.vr180-launcher
2. Point the launcher at your deployed backend (or a local one)
3. Tune the upload retry settings

Example:
  vr180-launcher init
  vr180-launcher init --force  # Overwrite an existing configuration`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("configuration already exists at %s\nUse --force to overwrite", path)
		}

		cfg := config.DefaultConfig()

		if err := promptBackendURL(cfg); err != nil {
			return fmt.Errorf("failed to configure backend: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := config.Save(cfg, path); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		fmt.Printf("\nConfiguration saved to %s\n", path)
		fmt.Println("\nYou can now upload a video with:")
		fmt.Println("  vr180-launcher upload --file <video>")
		return nil
	},
}

func promptBackendURL(cfg *config.Config) error {
	var choice string
	prompt := &survey.Select{
		Message: "Choose backend deployment:",
		Options: []string{"deployed", "local", "custom"},
		Default: "deployed",
		Help: fmt.Sprintf("deployed: %s, local: %s, custom: enter your own URL",
			config.DefaultBackendURL, config.LocalBackendURL),
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return err
	}

	switch choice {
	case "deployed":
		cfg.Backend.URL = config.DefaultBackendURL
	case "local":
		cfg.Backend.URL = config.LocalBackendURL
	default:
		urlPrompt := &survey.Input{
			Message: "Backend base URL:",
			Default: config.DefaultBackendURL,
			Help:    "The origin your processing backend is deployed at",
		}
		if err := survey.AskOne(urlPrompt, &cfg.Backend.URL, survey.WithValidator(validBackendURL)); err != nil {
			return err
		}
	}
	return nil
}

func validBackendURL(val interface{}) error {
	s, ok := val.(string)
	if !ok || s == "" {
		return fmt.Errorf("backend URL is required")
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be an absolute http(s) URL")
	}
	return nil
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}
