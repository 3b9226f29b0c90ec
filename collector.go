package siteql

import "context"

// Link collector page count bounds. The interactive surface exposes a page
// count selector within this range.
const (
	MinPages = 1
	MaxPages = 50
)

// LinkCollector discovers scrape targets from a single seed page.
type LinkCollector interface {
	// CollectLinks fetches the seed URL and returns up to max URLs in
	// discovery order: the seed itself first, then hyperlinks from the
	// seed page whose host matches the seed's host exactly. Results are
	// deduplicated by exact string match. The collector does not recurse
	// into discovered pages.
	//
	// When the seed cannot be fetched, CollectLinks returns just the seed
	// URL together with the fetch error so callers can report it and still
	// attempt the seed.
	CollectLinks(ctx context.Context, seedURL string, max int) ([]string, error)
}

// DomainLimiter provides per-domain rate limiting between requests.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
