package middleware

import (
	"context"

	"github.com/skibidoo/storefront/pkg/i18n"
)

type contextKey string

const (
	ctxLocale      contextKey = "locale"
	ctxCartSession contextKey = "cart_session"
)

// LocaleFromContext returns the request locale, defaulting to German.
func LocaleFromContext(ctx context.Context) i18n.Locale {
	if ctx == nil {
		return i18n.DefaultLocale
	}
	if v, ok := ctx.Value(ctxLocale).(i18n.Locale); ok && v != "" {
		return v
	}
	return i18n.DefaultLocale
}

// WithLocale injects the request locale into the context.
func WithLocale(ctx context.Context, locale i18n.Locale) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxLocale, locale)
}

// CartSessionFromContext returns the cart session attached by the CartSession
// middleware. Without the middleware an empty, cookie-less session is returned.
func CartSessionFromContext(ctx context.Context) *CartSession {
	if ctx != nil {
		if v, ok := ctx.Value(ctxCartSession).(*CartSession); ok && v != nil {
			return v
		}
	}
	return &CartSession{}
}

// WithCartSession injects a cart session into the context for downstream handlers.
func WithCartSession(ctx context.Context, session *CartSession) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartSession, session)
}
