package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skibidoo/storefront/api/controllers"
	cartcontrollers "github.com/skibidoo/storefront/api/controllers/cart"
	catalogcontrollers "github.com/skibidoo/storefront/api/controllers/catalog"
	"github.com/skibidoo/storefront/api/middleware"
	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/internal/seo"
	"github.com/skibidoo/storefront/pkg/config"
	"github.com/skibidoo/storefront/pkg/i18n"
	"github.com/skibidoo/storefront/pkg/logger"
	"github.com/skibidoo/storefront/pkg/metrics"
)

// Dependencies are the collaborators the router wires into handlers. Redis
// and RateLimiter are nil when Redis is not configured; Gatherer is nil when
// /metrics should not be exposed.
type Dependencies struct {
	Catalog     backend.CatalogReader
	Cart        backend.CartService
	Checkout    backend.CheckoutService
	Redis       controllers.Pinger
	RateLimiter middleware.RateLimitStore
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.Locale(i18n.ParseLocale(cfg.I18n.DefaultLocale), logg),
		middleware.CartSessionMiddleware(middleware.NewCookiePolicy(cfg.Cookie, cfg.App), logg),
	)

	cartPolicy := middleware.NewFormRateLimitPolicy("cart", cfg.RateLimit.Window, cfg.RateLimit.CartLimit)
	checkoutPolicy := middleware.NewFormRateLimitPolicy("checkout", cfg.RateLimit.Window, cfg.RateLimit.CheckoutLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.Redis, logg))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/robots.txt", controllers.Robots(cfg.App.SiteURL))
	r.Get("/sitemap.xml", controllers.Sitemap(seo.NewSitemapBuilder(deps.Catalog, cfg.App.SiteURL), logg))

	r.Route("/api", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.CartFetch(deps.Cart))
			r.Group(func(r chi.Router) {
				r.Use(middleware.FormRateLimit(cartPolicy, deps.RateLimiter, logg))
				r.Post("/add", cartcontrollers.CartAdd(deps.Cart, logg))
				r.Post("/update", cartcontrollers.CartUpdate(deps.Cart, logg))
				r.Post("/remove", cartcontrollers.CartRemove(deps.Cart, logg))
			})
		})

		r.With(middleware.FormRateLimit(checkoutPolicy, deps.RateLimiter, logg)).
			Post("/checkout", controllers.Checkout(deps.Checkout, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", catalogcontrollers.ProductList(deps.Catalog, logg))
			r.Get("/products/{slug}", catalogcontrollers.ProductDetail(deps.Catalog, logg))
			r.Get("/categories", catalogcontrollers.CategoryList(deps.Catalog))
			r.Get("/categories/{slug}", catalogcontrollers.CategoryDetail(deps.Catalog, logg))
		})
	})

	return r
}
