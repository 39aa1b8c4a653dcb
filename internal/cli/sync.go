package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BBrav0/CanvasToNotion/internal/app"
	"github.com/BBrav0/CanvasToNotion/internal/config"
	"github.com/BBrav0/CanvasToNotion/pkg/logger"
)

// SyncOptions holds flags for the sync command.
type SyncOptions struct {
	*RootOptions
	ConfigPath string
	DryRun     bool
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SyncOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sync pass",
		Long: `Run one full sync pass: snapshot the Notion database, enumerate
favorited Canvas courses, and create or complete one row per assignment.

Example:
  canvas2notion sync
  canvas2notion sync --dry-run --verbose`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "directory containing config.yaml")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "report what would change without writing to Notion")

	return cmd
}

func runSync(cmd *cobra.Command, opts *SyncOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if opts.Verbose {
		level = "debug"
	}
	log := logger.NewWithConfig(level, cfg.Logging.Pretty, cfg.Logging.NoColor)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New(cfg, log, opts.DryRun)

	result, err := application.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Sync complete! Added %d, marked complete %d, skipped %d, failed %d.\n",
		result.Added, result.MarkedComplete, result.Skipped, result.Failed)

	return nil
}
