package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/config"
	"github.com/skibidoo/storefront/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubBackend struct{}

func (stubBackend) ListProducts(ctx context.Context, filter backend.ProductFilter) backend.ProductPage {
	return backend.ProductPage{Products: []backend.Product{{ID: "p1", Name: "Tee", Slug: "gruener-tee", Price: 499}}, Total: 1}
}

func (stubBackend) GetProduct(ctx context.Context, slug string) *backend.Product {
	if slug != "gruener-tee" {
		return nil
	}
	return &backend.Product{ID: "p1", Name: "Tee", Slug: slug, Price: 499}
}

func (stubBackend) ListCategories(ctx context.Context) []backend.Category {
	return []backend.Category{{ID: "c1", Name: "Tee", Slug: "tee"}}
}

func (stubBackend) GetCategory(ctx context.Context, slug string) *backend.Category {
	return nil
}

func (stubBackend) GetCart(ctx context.Context, cartID string) backend.Cart {
	return backend.Cart{ID: cartID, ItemCount: 1}
}

func (stubBackend) AddToCart(ctx context.Context, input backend.AddItemInput) (*backend.Cart, error) {
	return &backend.Cart{ID: "cart-1", ItemCount: input.Quantity}, nil
}

func (stubBackend) UpdateCartItem(ctx context.Context, input backend.UpdateItemInput) (*backend.Cart, error) {
	return &backend.Cart{ID: input.CartID}, nil
}

func (stubBackend) RemoveCartItem(ctx context.Context, input backend.RemoveItemInput) (*backend.Cart, error) {
	return &backend.Cart{ID: input.CartID}, nil
}

func (stubBackend) Checkout(ctx context.Context, input backend.CheckoutInput) (*backend.CheckoutResult, error) {
	return &backend.CheckoutResult{OrderNumber: "SO-1"}, nil
}

type countingLimiter struct {
	limit int64
	count map[string]int64
}

func (c *countingLimiter) FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error) {
	c.count[scope]++
	return c.count[scope] <= limit, c.count[scope], nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Env: "test", SiteURL: "https://skibidoo.shop"},
		Cookie:    config.CookieConfig{Name: "cartId", MaxAge: 720 * time.Hour},
		RateLimit: config.RateLimitConfig{Window: time.Minute, CheckoutLimit: 1, CartLimit: 60},
		I18n:      config.I18nConfig{DefaultLocale: "de"},
	}
}

func newTestRouter(limiter *countingLimiter) (http.Handler, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	deps := Dependencies{
		Catalog:     stubBackend{},
		Cart:        stubBackend{},
		Checkout:    stubBackend{},
		Redis:       stubPinger{},
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
		Gatherer:    reg,
	}
	if limiter != nil {
		deps.RateLimiter = limiter
	}
	return NewRouter(testConfig(), nil, deps), reg
}

func TestRouterServesPublicEndpoints(t *testing.T) {
	router, _ := newTestRouter(nil)

	cases := []struct {
		path        string
		contentType string
		contains    string
	}{
		{path: "/health/live", contentType: "application/json", contains: "live"},
		{path: "/health/ready", contentType: "application/json", contains: `"redis":"ok"`},
		{path: "/robots.txt", contentType: "text/plain; charset=utf-8", contains: "Disallow: /api/"},
		{path: "/sitemap.xml", contentType: "application/xml; charset=utf-8", contains: "/products/gruener-tee"},
		{path: "/api/catalog/products", contentType: "application/json", contains: "gruener-tee"},
		{path: "/api/catalog/products/gruener-tee", contentType: "application/json", contains: "formattedPrice"},
		{path: "/api/catalog/categories", contentType: "application/json", contains: `"slug":"tee"`},
		{path: "/api/cart", contentType: "application/json", contains: `"empty":true`},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), tc.contentType))
			assert.Contains(t, rec.Body.String(), tc.contains)
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestRouterCartAddSetsCookie(t *testing.T) {
	router, _ := newTestRouter(nil)

	form := url.Values{"productId": {"p1"}, "quantity": {"2"}}
	req := httptest.NewRequest(http.MethodPost, "/api/cart/add", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2", rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "cart-1", cookies[0].Value)
}

func TestRouterCheckoutIsRateLimited(t *testing.T) {
	limiter := &countingLimiter{count: map[string]int64{}}
	router, _ := newTestRouter(limiter)

	submit := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(""))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.RemoteAddr = "198.51.100.4:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	first := submit()
	assert.Equal(t, http.StatusFound, first.Code)
	assert.Equal(t, "/cart", first.Header().Get("Location"))

	second := submit()
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRouterExposesMetrics(t *testing.T) {
	router, _ := newTestRouter(nil)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/catalog/products/gruener-tee", nil))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/catalog/products/{slug}"`)
}

func TestRouterUnknownRoute(t *testing.T) {
	router, _ := newTestRouter(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
