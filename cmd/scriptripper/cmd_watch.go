package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"scriptripper/internal/watcher"
)

func newWatchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the Scripts folders and analyze new transcripts automatically",
		Long: `Watch every Scripts/<profile>/ folder and run all of the profile's
tasks on each new transcript as it appears. Distinct transcripts are
processed concurrently up to performance.max_concurrent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			handler := func(ctx context.Context, transcriptPath string) error {
				_, err := a.pipeline.Process(ctx, transcriptPath, nil)
				return err
			}

			w, err := watcher.New(a.cfg.Paths.Scripts, handler, a.log, a.cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.Info(ctx, "ScriptRipper watch mode ready")
			a.log.Info(ctx, "Scripts: %s", a.cfg.Paths.Scripts)
			a.log.Info(ctx, "Outputs: %s", a.cfg.Paths.Outputs)
			a.log.Info(ctx, "Archive: %s", a.cfg.Paths.Archive)
			a.log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}
}
