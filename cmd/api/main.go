package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"docdash/internal/config"
	handlers "docdash/internal/http/handler"
	"docdash/internal/http/middleware"
	"docdash/internal/logging"
	"docdash/internal/metrics"
	"docdash/internal/otel"
	"docdash/internal/seed"
	"docdash/internal/session"
)

// @title Document Dashboard API
// @version 1.0
// @description Session-scoped document dashboard over in-memory mock data.
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, cfg.ServiceName, log)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("failed to register http metrics: %w", err)
	}

	var limiter *middleware.RateLimiter
	sessionOpts := []session.ManagerOption{session.WithLogger(log.Named("session"))}
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		sessionOpts = append(sessionOpts, session.WithEndHook(limiter.Forget))
	}

	source := seed.FromEnv(cfg.SeedFile)
	sessions := session.NewManager(
		session.Mount(source, log.Named("store")),
		cfg.Session.IdleTimeout(),
		sessionOpts...,
	)

	app := fiber.New(fiber.Config{
		AppName:               "docdash",
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(log.Named("http")))
	app.Use(promMiddleware.Handler())
	if limiter != nil {
		app.Use(limiter.Handler(sessions, cfg.Session.CookieName))
	}

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Sessions:   sessions,
		CookieName: cfg.Session.CookieName,
		Gatherer:   reg,
		Logger:     log,
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("addr", addr), zap.String("host", cfg.AppHost), zap.Bool("seed_file", cfg.SeedFile != ""))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}
