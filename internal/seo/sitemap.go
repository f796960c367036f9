package seo

import (
	"context"
	"encoding/xml"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/skibidoo/storefront/internal/backend"
	"github.com/skibidoo/storefront/pkg/pagination"
)

const (
	sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"
	dateLayout       = "2006-01-02"
)

// ChangeFreq is a sitemap changefreq value.
type ChangeFreq string

const (
	ChangeDaily   ChangeFreq = "daily"
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
)

// Page is one sitemap entry before rendering.
type Page struct {
	Path       string
	LastMod    time.Time
	ChangeFreq ChangeFreq
	Priority   float64
}

type staticPage struct {
	path       string
	changeFreq ChangeFreq
	priority   float64
}

var staticPages = []staticPage{
	{path: "/", changeFreq: ChangeDaily, priority: 1.0},
	{path: "/search", changeFreq: ChangeDaily, priority: 0.8},
	{path: "/cart", changeFreq: ChangeWeekly, priority: 0.5},
	{path: "/checkout", changeFreq: ChangeWeekly, priority: 0.5},
	{path: "/account/login", changeFreq: ChangeMonthly, priority: 0.3},
	{path: "/account/register", changeFreq: ChangeMonthly, priority: 0.3},
}

const (
	categoryPriority = 0.7
	productPriority  = 0.6
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// SitemapBuilder collects catalog pages from the backend.
type SitemapBuilder struct {
	catalog backend.CatalogReader
	siteURL string
	now     func() time.Time
}

func NewSitemapBuilder(catalog backend.CatalogReader, siteURL string) *SitemapBuilder {
	return &SitemapBuilder{
		catalog: catalog,
		siteURL: strings.TrimRight(siteURL, "/"),
		now:     time.Now,
	}
}

// Pages lists static pages, every category and every listable product.
// Catalog reads degrade to empty lists, so backend outages shrink the sitemap
// to the static pages instead of failing it.
func (b *SitemapBuilder) Pages(ctx context.Context) []Page {
	today := b.now().UTC()

	pages := make([]Page, 0, len(staticPages))
	for _, p := range staticPages {
		pages = append(pages, Page{Path: p.path, LastMod: today, ChangeFreq: p.changeFreq, Priority: p.priority})
	}

	if b.catalog == nil {
		return pages
	}

	for _, category := range backend.Flatten(b.catalog.ListCategories(ctx)) {
		if strings.TrimSpace(category.Slug) == "" {
			continue
		}
		lastMod, ok := category.LastModified()
		if !ok {
			lastMod = today
		}
		pages = append(pages, Page{
			Path:       "/category/" + url.PathEscape(category.Slug),
			LastMod:    lastMod,
			ChangeFreq: ChangeWeekly,
			Priority:   categoryPriority,
		})
	}

	products := b.catalog.ListProducts(ctx, backend.ProductFilter{Limit: pagination.SitemapLimit})
	for _, product := range products.Products {
		if strings.TrimSpace(product.Slug) == "" || !product.Status.IsListable() {
			continue
		}
		lastMod, ok := product.LastModified()
		if !ok {
			lastMod = today
		}
		pages = append(pages, Page{
			Path:       "/products/" + url.PathEscape(product.Slug),
			LastMod:    lastMod,
			ChangeFreq: ChangeWeekly,
			Priority:   productPriority,
		})
	}

	return pages
}

// Build renders the sitemap document.
func (b *SitemapBuilder) Build(ctx context.Context) ([]byte, error) {
	return Render(b.siteURL, b.Pages(ctx))
}

// Render encodes pages as a sitemaps.org urlset rooted at siteURL.
func Render(siteURL string, pages []Page) ([]byte, error) {
	siteURL = strings.TrimRight(siteURL, "/")
	set := urlSet{Xmlns: sitemapNamespace, URLs: make([]sitemapURL, 0, len(pages))}
	for _, p := range pages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        siteURL + p.Path,
			LastMod:    p.LastMod.UTC().Format(dateLayout),
			ChangeFreq: string(p.ChangeFreq),
			Priority:   strconv.FormatFloat(p.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
