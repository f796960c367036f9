package controllers

import (
	"net/http"

	"github.com/skibidoo/storefront/api/responses"
	"github.com/skibidoo/storefront/internal/seo"
	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
	"github.com/skibidoo/storefront/pkg/logger"
)

const (
	robotsCacheControl  = "public, max-age=86400"
	sitemapCacheControl = "public, max-age=3600"
)

// Robots serves robots.txt for siteURL.
func Robots(siteURL string) http.HandlerFunc {
	body := seo.Robots(siteURL)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", robotsCacheControl)
		responses.WriteText(w, http.StatusOK, body)
	}
}

// Sitemap serves sitemap.xml. Catalog outages shrink the sitemap to the
// static pages instead of failing.
func Sitemap(builder *seo.SitemapBuilder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := builder.Build(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render sitemap"))
			return
		}
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Header().Set("Cache-Control", sitemapCacheControl)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil && logg != nil {
			logg.Error(r.Context(), "sitemap.write_failed", err)
		}
	}
}
