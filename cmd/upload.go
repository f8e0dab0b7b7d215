package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/Umaima-s-pathan/VR-final/sdk/client"
	"github.com/Umaima-s-pathan/VR-final/sdk/event"
)

var uploadFile string

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a video for VR180 conversion",
	Long: `Upload a video file to the processing backend.

The backend may be a scale-to-zero deployment that takes tens of seconds
to wake up; the upload probes it first and retries on timeouts or
connection failures, so a slow cold start is not a failure.

Example:
  vr180-launcher upload --file holiday.mp4
  vr180-launcher upload --file holiday.mp4 --backend http://localhost:3001`,
	Args: cobra.NoArgs,
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if uploadFile == "" {
		prompt := &survey.Input{
			Message: "Path to video file:",
			Help:    "MP4, MOV or AVI, up to 500MB",
		}
		if err := survey.AskOne(prompt, &uploadFile, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(uploadFile)
	if err != nil {
		return fmt.Errorf("failed to read video file: %w", err)
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	backend := newBackend(cfg, logger)
	c, err := client.NewClient(cfg.SDKConfig(), backend, logger)
	if err != nil {
		return fmt.Errorf("failed to create upload client: %w", err)
	}

	subscribeProgress(c)

	fmt.Printf("Uploading %s (%.2f MB) to %s\n", filepath.Base(uploadFile), float64(len(data))/(1024*1024), cfg.Backend.URL)

	result, err := c.Submit(context.Background(), client.UploadRequest{
		Filename: filepath.Base(uploadFile),
		Data:     data,
	})
	// Let in-flight progress handlers finish before the final verdict.
	c.Close()
	if err != nil {
		return presentSubmitError(err)
	}

	if srvErr := result.ServerError(); srvErr != nil {
		fmt.Printf("\n✗ Upload failed: backend answered %d\n", srvErr.Status)
		if srvErr.Body != "" {
			fmt.Printf("  %s\n", srvErr.Body)
		}
		os.Exit(1)
	}

	fmt.Println("\n✓ Upload successful!")
	fmt.Printf("  Job ID: %s\n", result.JobID)
	fmt.Printf("  Accepted on attempt %d/%d\n", result.Attempt, cfg.Client.MaxAttempts)
	fmt.Println("\nProcessing started - this may take 15-45 minutes.")
	fmt.Println("Next steps:")
	fmt.Println("  1. Wait for processing to complete")
	fmt.Println("  2. Check status using the Job ID above")
	fmt.Println("  3. Download your VR180 video when ready")
	return nil
}

// subscribeProgress prints per-attempt progress so an operator can tell
// a slow cold start apart from a genuine failure.
func subscribeProgress(c client.Client) {
	c.SubscribeToEvents(event.AttemptStarted, func(e event.Event) {
		fmt.Printf("Upload attempt %v/%v...\n", e.Data[event.KeyAttempt], e.Data[event.KeyMaxAttempts])
	})
	c.SubscribeToEvents(event.WakeSucceeded, func(e event.Event) {
		fmt.Println("✓ Backend is awake and ready")
	})
	c.SubscribeToEvents(event.WakeFailed, func(e event.Event) {
		fmt.Println("⚠ Backend might be sleeping, waking it up...")
	})
	c.SubscribeToEvents(event.RetryScheduled, func(e event.Event) {
		fmt.Printf("⚠ Attempt failed (%v). Retrying in %v...\n", e.Data[event.KeyError], e.Data[event.KeyDelay])
	})
}

func presentSubmitError(err error) error {
	var verr *client.ValidationError
	if errors.As(err, &verr) {
		return fmt.Errorf("invalid upload: %w", verr.Err)
	}

	var nerr *client.NetworkError
	if errors.As(err, &nerr) {
		switch nerr.Kind {
		case client.NetworkTimeout:
			return fmt.Errorf("upload timed out after %d attempts - the backend may still be cold-starting, try again in a few minutes", nerr.Attempts)
		default:
			return fmt.Errorf("could not connect to the backend after %d attempts - check the backend URL and that the service is running", nerr.Attempts)
		}
	}

	return err
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFile, "file", "", "path to the video file")
	rootCmd.AddCommand(uploadCmd)
}
