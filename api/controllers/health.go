package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/skibidoo/storefront/api/responses"
	"github.com/skibidoo/storefront/pkg/config"
	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
	"github.com/skibidoo/storefront/pkg/logger"
)

const (
	envHeader          = "X-Storefront-Env"
	readyCheckTimeout  = 2 * time.Second
	dependencyDisabled = "disabled"
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready when every configured dependency answers. The
// commerce backend is not probed: reads degrade without it.
func HealthReady(cfg *config.Config, redis Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		status := map[string]string{"status": "ready", "redis": dependencyDisabled}
		if redis != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyCheckTimeout)
			defer cancel()
			if err := redis.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
			status["redis"] = "ok"
		}
		responses.WriteSuccess(w, status)
	}
}
