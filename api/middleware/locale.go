package middleware

import (
	"net/http"

	"github.com/skibidoo/storefront/pkg/i18n"
	"github.com/skibidoo/storefront/pkg/logger"
)

// Locale resolves the request locale from a /xx/ path prefix, then the
// Accept-Language header, then fallback.
func Locale(fallback i18n.Locale, logg *logger.Logger) func(http.Handler) http.Handler {
	if !fallback.IsSupported() {
		fallback = i18n.DefaultLocale
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale, ok := i18n.LocaleFromPath(r.URL.Path)
			if !ok {
				locale = fallback
				if header := r.Header.Get("Accept-Language"); header != "" {
					locale = i18n.LocaleFromHeader(header)
				}
			}

			ctx := WithLocale(r.Context(), locale)
			if logg != nil {
				ctx = logg.WithLocale(ctx, string(locale))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
