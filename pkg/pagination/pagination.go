package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 24
	// MaxLimit caps how many products a listing page can request.
	MaxLimit = 100
	// SitemapLimit is the single-page size used when enumerating the catalog.
	SitemapLimit = 1000
)

// Params holds 1-based page pagination inputs.
type Params struct {
	Page  int
	Limit int
}

// Normalize applies the default page and limit bounds.
func (p Params) Normalize() Params {
	return Params{Page: normalizePage(p.Page), Limit: normalizeLimit(p.Limit)}
}

// normalizePage treats anything below 1 as the first page.
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// normalizeLimit enforces the default and maximum limits.
func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
