package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/voice-notes/internal/api"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve POST /process_audio",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Address = addr
		}

		m := metrics.NewMetrics()
		proc, err := buildPipeline(ctx, m)
		if err != nil {
			return err
		}

		if cfg.Logging.Level != "debug" {
			gin.SetMode(gin.ReleaseMode)
		}
		router := gin.New()
		router.Use(gin.Recovery())
		router.MaxMultipartMemory = cfg.MaxUploadBytes()
		api.NewHandler(proc, log, m, cfg.MaxUploadBytes()).RegisterRoutes(router)

		srv := &http.Server{
			Addr:    cfg.Server.Address,
			Handler: router,
		}

		errChan := make(chan error, 1)
		go func() {
			log.Info(ctx, "Listening on %s (bucket %s, model %s)", cfg.Server.Address, cfg.Storage.Bucket, cfg.Vertex.Model)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errChan <- err
			}
			close(errChan)
		}()

		select {
		case <-ctx.Done():
			log.Info(context.Background(), "Shutdown signal received")
		case err := <-errChan:
			if err != nil {
				return err
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		log.Info(shutdownCtx, "Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.address)")
	rootCmd.AddCommand(serveCmd)
}
