// Package catalog serves product and category page data as JSON envelopes.
// Backend outages surface as empty listings, never as errors.
package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skibidoo/storefront/api/middleware"
	"github.com/skibidoo/storefront/api/responses"
	"github.com/skibidoo/storefront/api/validators"
	"github.com/skibidoo/storefront/internal/backend"
	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
	"github.com/skibidoo/storefront/pkg/i18n"
	"github.com/skibidoo/storefront/pkg/logger"
	"github.com/skibidoo/storefront/pkg/pagination"
	"github.com/skibidoo/storefront/pkg/types"
)

const maxSearchLength = 100

func translator(r *http.Request) i18n.Translator {
	return i18n.NewTranslator(middleware.LocaleFromContext(r.Context()))
}

// ProductList lists products for the catalog and search pages.
func ProductList(svc backend.CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParseQueryInt(r, "page", 1, 1, 10000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params := pagination.Params{Page: page, Limit: limit}.Normalize()

		result := svc.ListProducts(r.Context(), backend.ProductFilter{
			Page:       params.Page,
			Limit:      params.Limit,
			CategoryID: validators.QueryString(r, "category", maxSearchLength),
			Search:     validators.QueryString(r, "search", maxSearchLength),
		})

		responses.WriteSuccess(w, ProductListView{
			Products: newProductViews(result.Products, translator(r)),
			Meta:     types.PageMeta{Page: params.Page, Limit: params.Limit, Total: result.Total},
		})
	}
}

// ProductDetail returns one product by slug.
func ProductDetail(svc backend.CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notFound := pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		slug := validators.SanitizeString(chi.URLParam(r, "slug"), 200)
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, notFound)
			return
		}
		product := svc.GetProduct(r.Context(), slug)
		if product == nil || !product.Status.IsListable() {
			responses.WriteError(r.Context(), logg, w, notFound)
			return
		}
		responses.WriteSuccess(w, newProductView(*product, translator(r)))
	}
}

// CategoryList returns the category tree for navigation.
func CategoryList(svc backend.CatalogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := svc.ListCategories(r.Context())
		if categories == nil {
			categories = []backend.Category{}
		}
		responses.WriteSuccess(w, categories)
	}
}

// CategoryDetail returns a category together with its first page of products.
func CategoryDetail(svc backend.CatalogReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notFound := pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		slug := validators.SanitizeString(chi.URLParam(r, "slug"), 200)
		if slug == "" {
			responses.WriteError(r.Context(), logg, w, notFound)
			return
		}
		category := svc.GetCategory(r.Context(), slug)
		if category == nil {
			responses.WriteError(r.Context(), logg, w, notFound)
			return
		}

		result := svc.ListProducts(r.Context(), backend.ProductFilter{
			Page:       1,
			Limit:      pagination.DefaultLimit,
			CategoryID: category.ID,
		})
		responses.WriteSuccess(w, CategoryView{
			Category: *category,
			Products: newProductViews(result.Products, translator(r)),
		})
	}
}
