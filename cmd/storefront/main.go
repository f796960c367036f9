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

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/skibidoo/storefront/api/routes"
	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/config"
	"github.com/skibidoo/storefront/pkg/env"
	"github.com/skibidoo/storefront/pkg/instance"
	"github.com/skibidoo/storefront/pkg/logger"
	"github.com/skibidoo/storefront/pkg/metrics"
	"github.com/skibidoo/storefront/pkg/redis"
)

const (
	serviceName       = "storefront"
	readHeaderTimeout = 10 * time.Second
)

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	if err := run(cfg, logg); err != nil {
		logg.Error(context.Background(), "storefront stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logg *logger.Logger) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	clientOpts := []backend.Option{
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithMetrics(metrics.NewBackendMetrics(registry)),
	}
	deps := routes.Dependencies{
		HTTPMetrics: metrics.NewHTTPMetrics(registry),
		Gatherer:    registry,
	}

	if cfg.Redis.Enabled() {
		redisClient, redisErr := redis.New(ctx, cfg.Redis, logg)
		if redisErr != nil {
			return fmt.Errorf("bootstrap redis: %w", redisErr)
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
		clientOpts = append(clientOpts, backend.WithCache(redisClient, cfg.Cache.CatalogTTL))
		deps.Redis = redisClient
		deps.RateLimiter = redisClient
	} else {
		logg.Warn(ctx, "redis not configured, catalog cache and rate limiting disabled")
	}

	client, err := backend.NewClient(cfg.Backend.URL, logg, clientOpts...)
	if err != nil {
		return fmt.Errorf("create backend client: %w", err)
	}
	deps.Catalog = client
	deps.Cart = client
	deps.Checkout = client

	addr := ":" + env.GetFirst(cfg.App.Port, "PORT")
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
		"backend":  cfg.Backend.URL,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, deps),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logCtx, "starting storefront server")
		if serveErr := server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	select {
	case serveErr := <-errCh:
		return serveErr
	case <-ctx.Done():
		logg.Info(logCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		return fmt.Errorf("shutdown http server: %w", shutdownErr)
	}
	logg.Info(logCtx, "storefront server stopped")
	return nil
}
