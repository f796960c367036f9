package middleware

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/skibidoo/storefront/api/responses"
	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
	"github.com/skibidoo/storefront/pkg/logger"
)

// RateLimitStore counts hits per scope inside a fixed window.
type RateLimitStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// FormRateLimitPolicy throttles form posts per client IP.
type FormRateLimitPolicy struct {
	name   string
	window time.Duration
	limit  int
}

// NewFormRateLimitPolicy builds a policy with the supplied window and limit.
func NewFormRateLimitPolicy(name string, window time.Duration, limit int) FormRateLimitPolicy {
	return FormRateLimitPolicy{
		name:   strings.ToLower(strings.TrimSpace(name)),
		window: window,
		limit:  limit,
	}
}

func (p FormRateLimitPolicy) enabled() bool {
	return p.window > 0 && p.limit > 0
}

func (p FormRateLimitPolicy) normalizedName() string {
	if p.name == "" {
		return "form"
	}
	return p.name
}

func (p FormRateLimitPolicy) scope(ip string) string {
	if ip == "" {
		return ""
	}
	return p.normalizedName() + ":ip:" + ip
}

// FormRateLimit rejects clients that exceed the policy with 429. The limiter
// fails open when the counter store errors.
func FormRateLimit(policy FormRateLimitPolicy, store RateLimitStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.enabled() || store == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ip := clientIP(r)
			scope := policy.scope(ip)
			if scope == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed, count, err := store.FixedWindowAllow(ctx, scope, int64(policy.limit), policy.window)
			if err != nil {
				if logg != nil {
					logCtx := logg.WithField(ctx, "policy", policy.normalizedName())
					logg.Error(logCtx, "rate_limit.store_failed", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				respondRateLimited(ctx, logg, w, policy, ip, count)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func respondRateLimited(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, policy FormRateLimitPolicy, ip string, count int64) {
	if logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{
			"policy":         policy.normalizedName(),
			"ip":             ip,
			"attempts":       count,
			"limit":          policy.limit,
			"window_seconds": int(policy.window.Seconds()),
		})
		logg.Warn(logCtx, "rate_limit.blocked")
	}
	if seconds := int(policy.window.Seconds()); seconds > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(seconds))
	}
	responses.WriteError(ctx, nil, w, pkgerrors.New(pkgerrors.CodeRateLimit, "rate limit exceeded"))
}

func clientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if header := r.Header.Get("X-Forwarded-For"); header != "" {
		for _, part := range strings.Split(header, ",") {
			if ip := strings.TrimSpace(part); ip != "" {
				return ip
			}
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}
