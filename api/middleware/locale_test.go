package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skibidoo/storefront/pkg/i18n"
)

func TestLocale(t *testing.T) {
	cases := []struct {
		name   string
		path   string
		header string
		want   i18n.Locale
	}{
		{name: "path prefix wins", path: "/en/products", header: "de-DE", want: i18n.LocaleEN},
		{name: "header", path: "/products", header: "en-US,en;q=0.9,de;q=0.8", want: i18n.LocaleEN},
		{name: "unsupported header", path: "/products", header: "fr-FR", want: i18n.LocaleDE},
		{name: "no hints", path: "/", want: i18n.LocaleDE},
		{name: "unknown path prefix", path: "/fr/products", header: "en", want: i18n.LocaleEN},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got i18n.Locale
			handler := Locale(i18n.LocaleDE, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LocaleFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Accept-Language", tc.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestLocaleFallbackWithoutHeader(t *testing.T) {
	var got i18n.Locale
	handler := Locale(i18n.LocaleEN, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = LocaleFromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cart", nil))

	if got != i18n.LocaleEN {
		t.Fatalf("expected configured fallback, got %q", got)
	}
}

func TestLocaleFromContextDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := LocaleFromContext(req.Context()); got != i18n.DefaultLocale {
		t.Fatalf("expected default locale, got %q", got)
	}
}
