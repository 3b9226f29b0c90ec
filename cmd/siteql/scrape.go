package main

import (
	"fmt"
	"strings"

	"github.com/mlipski/siteql"
	"github.com/mlipski/siteql/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if !strings.HasPrefix(c.URL, "http://") && !strings.HasPrefix(c.URL, "https://") {
		fmt.Fprintln(deps.Stderr, "error: URL must start with http:// or https://")
		return siteql.Errorf(siteql.EINVALID, "URL must start with http:// or https://")
	}
	if c.Pages < siteql.MinPages || c.Pages > siteql.MaxPages {
		fmt.Fprintf(deps.Stderr, "error: page count must be between %d and %d\n", siteql.MinPages, siteql.MaxPages)
		return siteql.Errorf(siteql.EINVALID, "page count must be between %d and %d", siteql.MinPages, siteql.MaxPages)
	}

	fmt.Fprintf(deps.Stdout, "Scraping up to %d pages from %s\n", c.Pages, c.URL)

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d pages\n", event.Total)
		case scrape.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] saved %q (%s)\n",
				event.Completed, event.Total, event.Title, scrape.TruncateURL(event.URL, 60))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", scrape.TruncateURL(event.URL, 60), event.Error)
		case scrape.ProgressFinished:
			// Summary printed after the run completes.
		}
	}

	result, err := deps.Scraper.Run(deps.Ctx, c.URL, c.Pages, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d of %d pages (%s success rate)\n",
		result.Saved, result.Found, scrape.FormatRate(result.Saved, result.Found))

	return nil
}
