package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	pkgerrors "github.com/skibidoo/storefront/pkg/errors"
)

const (
	opListProducts   = "catalog.list_products"
	opGetProduct     = "catalog.get_product"
	opListCategories = "catalog.list_categories"
	opGetCategory    = "catalog.get_category"
)

// CatalogReader is the read side of the catalog used by page data handlers
// and the sitemap.
type CatalogReader interface {
	ListProducts(ctx context.Context, filter ProductFilter) ProductPage
	GetProduct(ctx context.Context, slug string) *Product
	ListCategories(ctx context.Context) []Category
	GetCategory(ctx context.Context, slug string) *Category
}

// ListProducts returns a page of products, or an empty page when the backend
// cannot be reached.
func (c *Client) ListProducts(ctx context.Context, filter ProductFilter) ProductPage {
	query := filter.query()
	var page ProductPage
	err := c.cachedRead(ctx, opListProducts, []string{"products", query.Encode()}, &page, func() error {
		return c.do(ctx, opListProducts, http.MethodGet, "/api/products", query, nil, &page)
	})
	if err != nil {
		c.degraded(ctx, opListProducts, err)
		return ProductPage{Products: []Product{}}
	}
	if page.Products == nil {
		page.Products = []Product{}
	}
	return page
}

// GetProduct returns the product for slug, or nil when it does not exist or
// the backend cannot be reached.
func (c *Client) GetProduct(ctx context.Context, slug string) *Product {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	var product Product
	err := c.cachedRead(ctx, opGetProduct, []string{"product", slug}, &product, func() error {
		if err := c.do(ctx, opGetProduct, http.MethodGet, "/api/products/"+url.PathEscape(slug), nil, nil, &product); err != nil {
			return err
		}
		if product.empty() {
			return emptyRecord(opGetProduct)
		}
		return nil
	})
	if err != nil {
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			c.degraded(ctx, opGetProduct, err)
		}
		return nil
	}
	if product.empty() {
		return nil
	}
	return &product
}

// ListCategories returns all categories, or an empty list on failure.
func (c *Client) ListCategories(ctx context.Context) []Category {
	var payload struct {
		Categories []Category `json:"categories"`
	}
	err := c.cachedRead(ctx, opListCategories, []string{"categories"}, &payload, func() error {
		return c.do(ctx, opListCategories, http.MethodGet, "/api/categories", nil, nil, &payload)
	})
	if err != nil {
		c.degraded(ctx, opListCategories, err)
		return []Category{}
	}
	if payload.Categories == nil {
		return []Category{}
	}
	return payload.Categories
}

// GetCategory returns the category for slug, or nil when it does not exist or
// the backend cannot be reached.
func (c *Client) GetCategory(ctx context.Context, slug string) *Category {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	var category Category
	err := c.cachedRead(ctx, opGetCategory, []string{"category", slug}, &category, func() error {
		if err := c.do(ctx, opGetCategory, http.MethodGet, "/api/categories/"+url.PathEscape(slug), nil, nil, &category); err != nil {
			return err
		}
		if category.empty() {
			return emptyRecord(opGetCategory)
		}
		return nil
	})
	if err != nil {
		if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
			c.degraded(ctx, opGetCategory, err)
		}
		return nil
	}
	if category.empty() {
		return nil
	}
	return &category
}

func (p Product) empty() bool { return p.ID == "" && p.Slug == "" }

func (c Category) empty() bool { return c.ID == "" && c.Slug == "" }
