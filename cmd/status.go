package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Umaima-s-pathan/VR-final/internal/status"
)

var (
	watchStatus   bool
	watchInterval time.Duration
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backend status",
	Long: `Check whether the processing backend is online.

With --watch, polls continuously. Probe results are cached briefly so a
tight poll interval does not hammer a cold-starting backend.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	monitor := status.NewMonitor(newBackend(cfg, logger), 0, logger)

	if !watchStatus {
		printStatus(cfg.Backend.URL, monitor.Online(context.Background()))
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	printStatus(cfg.Backend.URL, monitor.Online(ctx))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			printStatus(cfg.Backend.URL, monitor.Online(ctx))
		}
	}
}

func printStatus(backendURL string, online bool) {
	ts := time.Now().Format("15:04:05")
	if online {
		fmt.Printf("[%s] ✓ Backend is online (%s)\n", ts, backendURL)
	} else {
		fmt.Printf("[%s] ✗ Backend is offline or unreachable (%s)\n", ts, backendURL)
	}
}

func init() {
	statusCmd.Flags().BoolVar(&watchStatus, "watch", false, "poll the backend continuously")
	statusCmd.Flags().DurationVar(&watchInterval, "interval", 5*time.Second, "poll interval with --watch")
	rootCmd.AddCommand(statusCmd)
}
