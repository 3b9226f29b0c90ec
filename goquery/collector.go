// Package goquery provides HTML link collection and text extraction
// implemented with the goquery CSS selector library.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mlipski/siteql"
)

// Ensure Collector implements siteql.LinkCollector at compile time.
var _ siteql.LinkCollector = (*Collector)(nil)

// Collector discovers scrape targets by extracting same-domain hyperlinks
// from a single seed page. It does not recurse into discovered pages.
type Collector struct {
	fetcher siteql.Fetcher
}

// NewCollector creates a new Collector that fetches the seed page with the
// given fetcher.
func NewCollector(fetcher siteql.Fetcher) *Collector {
	return &Collector{fetcher: fetcher}
}

// CollectLinks fetches the seed URL and returns up to max URLs in document
// order, the seed first. Only links whose host matches the seed's host
// exactly are kept; subdomains are considered different hosts. URLs are
// deduplicated by exact string match, so two URLs differing only in query
// string are distinct.
//
// When the seed page cannot be fetched, CollectLinks returns just the seed
// together with the fetch error so the caller can report it and still try
// the seed itself.
func (c *Collector) CollectLinks(ctx context.Context, seedURL string, max int) ([]string, error) {
	if max < siteql.MinPages || max > siteql.MaxPages {
		return nil, siteql.Errorf(siteql.EINVALID, "page count must be between %d and %d", siteql.MinPages, siteql.MaxPages)
	}

	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, siteql.Errorf(siteql.EINVALID, "invalid seed URL: %v", err)
	}

	links := []string{seedURL}
	if max == 1 {
		return links, nil
	}

	html, err := c.fetcher.Fetch(ctx, seedURL)
	if err != nil {
		return links, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return links, siteql.Errorf(siteql.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := map[string]bool{seedURL: true}

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return true
		}

		resolved := resolveURL(seed, href)
		if resolved == "" {
			return true
		}

		// Same-domain only: exact host match against the seed.
		if !isSameHost(seed, resolved) {
			return true
		}

		if seen[resolved] {
			return true
		}
		seen[resolved] = true
		links = append(links, resolved)

		return len(links) < max
	})

	return links, nil
}

// resolveURL resolves href against the base URL and returns the absolute
// form with the fragment stripped. Returns "" for unparseable hrefs and for
// links that resolve back to the base page itself.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""

	// Drop self-referential links (e.g., anchor-only links on the page).
	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isSameHost checks if the resolved URL has the same host as the base URL.
// Exact host matching - subdomains are considered different hosts.
func isSameHost(base *url.URL, resolved string) bool {
	u, err := url.Parse(resolved)
	if err != nil {
		return false
	}
	return u.Host == base.Host
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
