package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lookupagg/internal/app"
	"lookupagg/internal/platform/config"
	"lookupagg/internal/platform/httpserver"
	"lookupagg/internal/platform/logger"
	"lookupagg/internal/platform/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)

	router, err := app.NewRouter(cfg, log, metrics.NewRegistry())
	if err != nil {
		log.Error("failed to wire lookup service", "error", err)
		os.Exit(1)
	}

	srv := httpserver.New(cfg.Server.Addr, router, cfg.Upstream.Timeout)

	go func() {
		log.Info("starting lookup aggregator", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
