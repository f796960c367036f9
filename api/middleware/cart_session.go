package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/skibidoo/storefront/pkg/config"
	"github.com/skibidoo/storefront/pkg/logger"
)

const defaultCartCookieName = "cartId"

// CookiePolicy describes how the cart cookie is written.
type CookiePolicy struct {
	Name   string
	MaxAge time.Duration
	Secure bool
}

// NewCookiePolicy derives the cookie policy from configuration.
func NewCookiePolicy(cfg config.CookieConfig, app config.AppConfig) CookiePolicy {
	return CookiePolicy{
		Name:   cfg.Name,
		MaxAge: cfg.MaxAge,
		Secure: cfg.SecureFor(app),
	}
}

func (p CookiePolicy) name() string {
	if p.Name == "" {
		return defaultCartCookieName
	}
	return p.Name
}

// CartSession is the per-request view of the cart cookie. The cart itself
// lives in the backend; only its id is kept client-side.
type CartSession struct {
	policy CookiePolicy
	id     string
}

// NewCartSession builds a session for a known cart id. An empty id means the
// visitor has no cart yet.
func NewCartSession(policy CookiePolicy, id string) *CartSession {
	return &CartSession{policy: policy, id: strings.TrimSpace(id)}
}

func (s *CartSession) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

func (s *CartSession) HasCart() bool {
	return s.ID() != ""
}

// Adopt stores a backend-issued cart id in the cookie. It is a no-op when the
// request already carried a cart or the id is empty.
func (s *CartSession) Adopt(w http.ResponseWriter, id string) bool {
	id = strings.TrimSpace(id)
	if s == nil || s.HasCart() || id == "" {
		return false
	}
	s.id = id
	http.SetCookie(w, s.cookie(id, int(s.policy.MaxAge.Seconds())))
	return true
}

// Clear deletes the cart cookie, e.g. after a completed checkout.
func (s *CartSession) Clear(w http.ResponseWriter) {
	if s == nil {
		return
	}
	s.id = ""
	http.SetCookie(w, s.cookie("", -1))
}

func (s *CartSession) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.policy.name(),
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.policy.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CartSessionMiddleware reads the cart cookie once per request and exposes it
// through CartSessionFromContext.
func CartSessionMiddleware(policy CookiePolicy, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if c, err := r.Cookie(policy.name()); err == nil {
				id = c.Value
			}
			session := NewCartSession(policy, id)

			ctx := WithCartSession(r.Context(), session)
			if logg != nil && session.HasCart() {
				ctx = logg.WithCartID(ctx, session.ID())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
