package siteql

import "context"

// Fetcher retrieves HTML from URLs.
// Implementations may use plain HTTP or browser automation for
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the HTML document at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ExtractResult holds the content extracted from a fetched page.
type ExtractResult struct {
	// Title is the page title. Extractors substitute a placeholder when
	// the page carries no title.
	Title string

	// Text is the page text with markup stripped and whitespace collapsed,
	// truncated to MaxContentLen characters.
	Text string

	// ContentHTML is the main content as HTML, when the extractor performs
	// boilerplate removal. Empty for whole-page extractors.
	ContentHTML string
}

// Extractor extracts text content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns the page title and text.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}
