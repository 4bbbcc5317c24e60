package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
	"github.com/nguyentantai21042004/voice-notes/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Convert recordings dropped into the inbox directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := ensureDirectories(cfg); err != nil {
			return err
		}

		m := metrics.NewMetrics()
		proc, err := buildPipeline(ctx, m)
		if err != nil {
			return err
		}

		inbox := watcher.NewInbox(proc, cfg.Paths.Output, cfg.Paths.Archived, log, m)
		w, err := watcher.New(cfg.Paths.Inbox, inbox.Handle, log, cfg.Watch.MaxConcurrent)
		if err != nil {
			return err
		}
		defer w.Stop()

		log.Info(ctx, "Monitoring: %s", cfg.Paths.Inbox)
		log.Info(ctx, "Output: %s", cfg.Paths.Output)
		log.Info(ctx, "Press Ctrl+C to stop")

		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Inbox,
		cfg.Paths.Output,
		cfg.Paths.Archived,
		cfg.Paths.Uploads,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
