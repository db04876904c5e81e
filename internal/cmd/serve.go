package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/csscolor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the color API, swatches and palettes over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address (host:port)")
	serveCmd.Flags().String("cache-control", "no-store", "Cache-Control header for swatches and palettes")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics on /metrics")
	serveCmd.Flags().Bool("palettes", true, "Serve palettes from --palette-dir")

	mustBind(serveCmd, "serve", "addr", "cache-control", "metrics", "palettes")
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	addr := viper.GetString("serve.addr")

	cfg := server.Config{
		CacheControl: viper.GetString("serve.cache_control"),
	}
	if viper.GetBool("serve.metrics") {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		cfg.Registry = reg
	}
	if viper.GetBool("serve.palettes") {
		dir := viper.GetString("palette-dir")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create palette directory: %w", err)
		}
		cfg.PaletteDir = dir
	}
	swatchDefaults, err := swatchOptions()
	if err != nil {
		return err
	}
	cfg.Swatch = swatchDefaults

	mux, err := server.NewMux(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("color server listening",
		"addr", addr,
		"palette_dir", cfg.PaletteDir,
		"metrics", cfg.Registry != nil,
	)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
