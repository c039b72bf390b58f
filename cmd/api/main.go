package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quantdec/internal/api"
	"quantdec/internal/config"
	"quantdec/internal/data"
	"quantdec/internal/infrastructure"
	"quantdec/internal/pages"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quantdec-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Configuration comes from CONFIG_PATH (optional) plus API_* overrides.
	cfg, err := config.LoadFromEnv(config.NewViper(), "")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := infrastructure.NewLogger(cfg.Server.Env)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cache *data.ResponseCache[*pages.View]
	if cfg.Cache.Enabled {
		cache = data.NewResponseCache[*pages.View](cfg.Cache.TTL)
		go cache.Run(ctx, cfg.Cache.TTL)
		logger.Warn("render cache enabled: repeated requests return identical synthetic data until entries expire",
			zap.Duration("ttl", cfg.Cache.TTL))
	}

	router, err := api.NewRouter(cfg, logger, pages.NewRouter(cfg), cache)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting API server",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Server.Env),
			zap.Uint64("seed", cfg.Series.Seed))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
