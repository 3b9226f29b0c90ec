package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mlipski/siteql"
)

// NoTitle is stored when a page carries no <title> element.
const NoTitle = "No Title"

// Ensure Extractor implements siteql.Extractor at compile time.
var _ siteql.Extractor = (*Extractor)(nil)

// Extractor extracts whole-page text from HTML. Script and style content
// is removed; everything else that renders as text is kept. For
// boilerplate-free extraction use trafilatura.Extractor instead.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the page title and the collapsed page text, truncated to
// siteql.MaxContentLen characters.
func (e *Extractor) Extract(html string) (*siteql.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, siteql.Errorf(siteql.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, siteql.Errorf(siteql.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = NoTitle
	}

	doc.Find("script, style, noscript").Remove()

	text := CollapseWhitespace(doc.Text())

	return &siteql.ExtractResult{
		Title: title,
		Text:  Truncate(text, siteql.MaxContentLen),
	}, nil
}

// CollapseWhitespace normalizes raw page text: each line is trimmed and
// split on two-space runs, and the non-empty chunks are joined with single
// spaces. Crude, but effective on rendered-page text dumps.
func CollapseWhitespace(text string) string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, chunk := range strings.Split(strings.TrimSpace(line), "  ") {
			chunk = strings.TrimSpace(chunk)
			if chunk != "" {
				chunks = append(chunks, chunk)
			}
		}
	}
	return strings.Join(chunks, " ")
}

// Truncate cuts s to at most n runes. Content limits count characters, not
// bytes, so multibyte text keeps its full budget.
func Truncate(s string, n int) string {
	if len(s) <= n {
		// Byte length bounds rune count.
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
