// Package seo renders robots.txt and sitemap.xml for the storefront.
package seo

import (
	"fmt"
	"strings"
)

// disallowedPaths keep crawlers out of private and duplicate-content routes.
var disallowedPaths = []string{
	"/admin/",
	"/api/",
	"/account/",
	"/checkout/",
	"/cart/",
}

// Robots renders robots.txt for siteURL.
func Robots(siteURL string) string {
	siteURL = strings.TrimRight(siteURL, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "# Skibidoo Shop - robots.txt\n# %s\n\n", siteURL)
	b.WriteString("User-agent: *\nAllow: /\n\n")
	b.WriteString("# Disallow admin and internal paths\n")
	for _, path := range disallowedPaths {
		fmt.Fprintf(&b, "Disallow: %s\n", path)
	}
	b.WriteString("\n# Disallow search with parameters (avoid duplicate content)\n")
	b.WriteString("Disallow: /search?*\n\n")
	b.WriteString("# Crawl-delay for polite crawling\n")
	b.WriteString("Crawl-delay: 1\n\n")
	b.WriteString("# Sitemap location\n")
	fmt.Fprintf(&b, "Sitemap: %s/sitemap.xml\n", siteURL)

	return strings.TrimSpace(b.String())
}
