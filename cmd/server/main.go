// Command server runs the modmail HTTP API and its background workers.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/PumPum7/modmail/internal/bootstrap"
	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/middleware"
	"github.com/PumPum7/modmail/internal/observability"
	"github.com/PumPum7/modmail/internal/server"
	"github.com/PumPum7/modmail/internal/service"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// @title Modmail API
// @version 1.0
// @description Persistence and query API for a Discord modmail bot and its dashboard: threads, messages, notes, macros, blocked users, guild configuration and analytics.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a service JWT.

func main() {
	if err := run(); err != nil {
		middleware.Logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	middleware.ConfigureLogger(cfg.LogLevel, cfg.LogFormat, cfg.Env)

	shutdownTracing, err := observability.InitTracing(observability.TracingConfig{
		ServiceName:    "modmail-api",
		ServiceVersion: "1.0.0",
		Environment:    cfg.Env,
		Enabled:        cfg.TracingEnabled,
		Exporter:       cfg.TracingExporter,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SamplerRatio:   cfg.TracingSampleRatio,
	})
	if err != nil {
		return err
	}

	db, rdb, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedDemo: cfg.Env == "development"})
	if err != nil {
		return err
	}
	dispatcher, err := bootstrap.NewDispatcher(cfg, rdb)
	if err != nil {
		return err
	}

	srv := server.NewServerWithDeps(cfg, db, rdb, dispatcher)
	refresher := service.NewAnalyticsRefresher(srv.Analytics(), cfg.AnalyticsRefreshInterval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	handler := &sutureslog.Handler{Logger: middleware.Logger}
	root := suture.New("modmail", suture.Spec{
		EventHook:      handler.MustHook(),
		FailureBackoff: 5 * time.Second,
		Timeout:        15 * time.Second,
	})
	root.Add(srv)
	root.Add(refresher)

	middleware.Logger.Info("modmail API starting", slog.String("port", cfg.Port), slog.String("env", cfg.Env))
	serveErr := root.Serve(ctx)
	if errors.Is(serveErr, context.Canceled) {
		serveErr = nil
	}

	middleware.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return errors.Join(serveErr, srv.Shutdown(shutdownCtx), shutdownTracing(shutdownCtx))
}
