// Package scrape provides scraping orchestration. It coordinates link
// collection, fetching, extraction, and storage of pages from one domain.
package scrape

import (
	"context"
	"net/url"

	"github.com/mlipski/siteql"
	"github.com/mlipski/siteql/goquery"
)

// Scraper orchestrates a scraping run. URLs are processed sequentially;
// the limiter paces requests to the target domain.
type Scraper struct {
	Collector siteql.LinkCollector
	Sitemaps  siteql.SitemapService
	Fetcher   siteql.Fetcher
	Extractor siteql.Extractor
	Converter siteql.Converter
	Records   siteql.RecordService
	Limiter   siteql.DomainLimiter

	// UseSitemap switches URL discovery from the single-page link
	// collector to sitemap discovery.
	UseSitemap bool
}

// Result holds the outcome of a scraping run.
type Result struct {
	Found  int
	Saved  int
	Failed int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a scraping run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Title     string
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Run discovers up to maxPages URLs starting from seedURL and scrapes them
// one by one. Each page is fetched, its text extracted and truncated, and a
// record inserted. Failures are counted and reported through progress but do
// not stop the run.
func (s *Scraper) Run(ctx context.Context, seedURL string, maxPages int, progress ProgressFunc) (*Result, error) {
	urls, err := s.discover(ctx, seedURL, maxPages)
	if err != nil && len(urls) == 0 {
		return nil, err
	}
	// A failed seed fetch still leaves the seed itself to try.
	if err != nil && progress != nil {
		progress(ProgressEvent{Type: ProgressFailed, URL: seedURL, Error: err})
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: len(urls)})
	}

	result := &Result{Found: len(urls)}

	for i, pageURL := range urls {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		// Pace requests to the target server.
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx, hostOf(pageURL)); err != nil {
				return result, err
			}
		}

		rec, err := s.scrapePage(ctx, pageURL)
		if err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: i + 1,
					Total:     len(urls),
					URL:       pageURL,
					Error:     err,
				})
			}
			continue
		}

		result.Saved++
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressSaved,
				Completed: i + 1,
				Total:     len(urls),
				URL:       pageURL,
				Title:     rec.Title,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: len(urls), Total: len(urls)})
	}

	return result, nil
}

// discover returns the list of URLs to scrape, capped at maxPages.
func (s *Scraper) discover(ctx context.Context, seedURL string, maxPages int) ([]string, error) {
	if s.UseSitemap && s.Sitemaps != nil {
		urls, err := s.Sitemaps.DiscoverURLs(ctx, seedURL, nil)
		if err != nil {
			return nil, err
		}
		if len(urls) > maxPages {
			urls = urls[:maxPages]
		}
		if len(urls) == 0 {
			urls = []string{seedURL}
		}
		return urls, nil
	}

	return s.Collector.CollectLinks(ctx, seedURL, maxPages)
}

// scrapePage fetches one URL, extracts its content, and stores a record.
func (s *Scraper) scrapePage(ctx context.Context, pageURL string) (*siteql.Record, error) {
	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	content := extracted.Text
	if s.Converter != nil && extracted.ContentHTML != "" {
		markdown, err := s.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return nil, err
		}
		content = goquery.Truncate(markdown, siteql.MaxContentLen)
	}

	rec := &siteql.Record{
		URL:     pageURL,
		Title:   extracted.Title,
		Content: content,
	}
	if err := s.Records.CreateRecord(ctx, rec); err != nil {
		return nil, err
	}

	return rec, nil
}

// hostOf returns the host component of a URL, or the URL itself when it
// cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
