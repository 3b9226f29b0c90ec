// Package trafilatura provides main-content extraction with boilerplate
// removal, implemented with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/mlipski/siteql"
	sqgoquery "github.com/mlipski/siteql/goquery"
	"golang.org/x/net/html"
)

// Ensure Extractor implements siteql.Extractor at compile time.
var _ siteql.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main content of a page,
// dropping navigation, sidebars, footers and ads. The extracted text is
// collapsed and truncated like the whole-page extractor's output, and the
// main content is also returned as HTML for markdown conversion.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*siteql.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, siteql.Errorf(siteql.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = sqgoquery.NoTitle
	}

	text := sqgoquery.CollapseWhitespace(result.ContentText)

	return &siteql.ExtractResult{
		Title:       title,
		Text:        sqgoquery.Truncate(text, siteql.MaxContentLen),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
