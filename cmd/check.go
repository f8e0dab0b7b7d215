package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Umaima-s-pathan/VR-final/internal/diagnose"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run backend diagnostics",
	Long: `Run the diagnostic suite against the processing backend: health
endpoint, root page, CORS preflight and the status API.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	fmt.Printf("Testing backend: %s\n\n", cfg.Backend.URL)

	report := diagnose.Run(context.Background(), newBackend(cfg, logger))

	for _, check := range report.Checks {
		if check.OK {
			fmt.Printf("✓ %s (status %d)\n", check.Name, check.Status)
		} else if check.Err != nil {
			fmt.Printf("✗ %s: %v\n", check.Name, check.Err)
		} else {
			fmt.Printf("✗ %s (status %d)\n", check.Name, check.Status)
		}
		if check.Detail != "" {
			fmt.Printf("  %s\n", check.Detail)
		}
	}

	fmt.Println()
	if report.Healthy() {
		fmt.Println("✓ All checks passed - backend is ready for uploads")
		return nil
	}

	fmt.Println("⚠ Some checks failed. If the backend was deployed recently it")
	fmt.Println("  may still be starting up; wait 5-10 minutes and try again.")
	os.Exit(1)
	return nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
