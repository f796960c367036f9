package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testPolicy() CookiePolicy {
	return CookiePolicy{Name: "cartId", MaxAge: 30 * 24 * time.Hour, Secure: true}
}

func TestCartSessionMiddlewareReadsCookie(t *testing.T) {
	var got *CartSession
	handler := CartSessionMiddleware(testPolicy(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CartSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: "cartId", Value: "cart-1"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got == nil || !got.HasCart() {
		t.Fatalf("expected session with cart, got %+v", got)
	}
	if got.ID() != "cart-1" {
		t.Fatalf("unexpected cart id %q", got.ID())
	}
}

func TestCartSessionMiddlewareWithoutCookie(t *testing.T) {
	var got *CartSession
	handler := CartSessionMiddleware(testPolicy(), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = CartSessionFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got.HasCart() {
		t.Fatalf("expected no cart, got %q", got.ID())
	}
}

func TestCartSessionFromContextWithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	session := CartSessionFromContext(req.Context())
	if session == nil || session.HasCart() {
		t.Fatalf("expected empty session, got %+v", session)
	}
}

func TestCartSessionAdoptSetsCookie(t *testing.T) {
	session := NewCartSession(testPolicy(), "")
	rec := httptest.NewRecorder()

	if !session.Adopt(rec, "cart-new") {
		t.Fatalf("expected adopt to set cookie")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "cartId" || c.Value != "cart-new" {
		t.Fatalf("unexpected cookie %s=%s", c.Name, c.Value)
	}
	if c.Path != "/" || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes %+v", c)
	}
	if c.MaxAge != 2592000 {
		t.Fatalf("expected 30 day max age, got %d", c.MaxAge)
	}
	if session.ID() != "cart-new" {
		t.Fatalf("session should track adopted id, got %q", session.ID())
	}
}

func TestCartSessionAdoptKeepsExistingCart(t *testing.T) {
	session := NewCartSession(testPolicy(), "cart-1")
	rec := httptest.NewRecorder()

	if session.Adopt(rec, "cart-2") {
		t.Fatalf("expected adopt to be a no-op for existing cart")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("expected no cookie to be written")
	}
	if session.ID() != "cart-1" {
		t.Fatalf("unexpected id %q", session.ID())
	}
}

func TestCartSessionAdoptIgnoresEmptyID(t *testing.T) {
	session := NewCartSession(testPolicy(), "")
	rec := httptest.NewRecorder()

	if session.Adopt(rec, "  ") {
		t.Fatalf("expected empty id to be ignored")
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("expected no cookie to be written")
	}
}

func TestCartSessionClearExpiresCookie(t *testing.T) {
	session := NewCartSession(testPolicy(), "cart-1")
	rec := httptest.NewRecorder()

	session.Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got max age %d", cookies[0].MaxAge)
	}
	if session.HasCart() {
		t.Fatalf("expected session to be cleared")
	}
}
