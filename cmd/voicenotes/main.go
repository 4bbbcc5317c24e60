// Package main is the entry point for the voice-notes service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-notes/internal/blob"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/credentials"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
	"github.com/nguyentantai21042004/voice-notes/internal/notes"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/render"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

const defaultConfigPath = "config.yaml"

var (
	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "voicenotes",
	Short: "Turn audio recordings into PDF notes",
	Long: `voicenotes stages an audio recording in Cloud Storage, asks Gemini on
Vertex AI for sectioned notes and renders them into a PDF.

Run "serve" for the HTTP endpoint, "watch" to convert files dropped into an
inbox directory, or "render" to lay out an existing notes file locally.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = loaded
		log = logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: $"+config.EnvPath+" or ./config.yaml)")
}

// loadConfig resolves the config path from --config, then $VOICENOTES_CONFIG,
// then ./config.yaml. A missing ./config.yaml falls back to defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv(config.EnvPath)
	}
	if path != "" {
		return config.Load(path)
	}

	if _, err := os.Stat(defaultConfigPath); errors.Is(err, fs.ErrNotExist) {
		c := &config.Config{}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c, nil
	}
	return config.Load(defaultConfigPath)
}

// buildPipeline wires storage, model and renderer from the loaded config.
func buildPipeline(ctx context.Context, m *metrics.Metrics) (processor.Processor, error) {
	creds, err := credentials.Load(cfg.Vertex.CredentialsFile)
	if err != nil {
		return nil, err
	}

	transfer, err := blob.New(ctx, creds, log)
	if err != nil {
		return nil, err
	}
	model, err := notes.NewGeminiModel(ctx, cfg.Vertex, creds)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(cfg.Render, log)
	if err != nil {
		return nil, err
	}

	gen := notes.New(transfer, model, cfg.Storage.Bucket, cfg.Vertex.AudioMIMEType, log)

	var observer processor.StageObserver
	if m != nil {
		observer = m
	}
	return processor.New(cfg, gen, renderer, executor.New(), log, observer), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
