package trafilatura_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mlipski/siteql"
	"github.com/mlipski/siteql/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articleHTML is a page with clear main content surrounded by boilerplate.
const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Understanding Token Buckets</title></head>
<body>
	<nav><a href="/">Home</a> <a href="/blog">Blog</a> <a href="/about">About</a></nav>
	<main>
		<article>
			<h1>Understanding Token Buckets</h1>
			<p>A token bucket limits the rate of requests by refilling tokens at a
			fixed interval. Each request consumes one token, and requests wait when
			the bucket is empty.</p>
			<p>The burst size controls how many requests may proceed back to back
			before pacing kicks in. With a burst of one, every request after the
			first is spaced by the refill interval.</p>
		</article>
	</main>
	<footer>Copyright 2026. All rights reserved. <a href="/privacy">Privacy</a></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title and main content", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articleHTML)
		require.NoError(t, err)

		assert.Equal(t, "Understanding Token Buckets", result.Title)
		assert.Contains(t, result.Text, "token bucket limits the rate of requests")
		assert.Contains(t, result.Text, "burst size controls")
		assert.NotEmpty(t, result.ContentHTML)
	})

	t.Run("drops navigation and footer boilerplate", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articleHTML)
		require.NoError(t, err)

		assert.NotContains(t, result.Text, "All rights reserved")
	})

	t.Run("truncates long content", func(t *testing.T) {
		t.Parallel()

		var sb strings.Builder
		sb.WriteString(`<html><head><title>Long</title></head><body><article>`)
		for i := 0; i < 400; i++ {
			fmt.Fprintf(&sb, "<p>Paragraph number %d with enough words to count as real content.</p>", i)
		}
		sb.WriteString(`</article></body></html>`)

		result, err := trafilatura.NewExtractor().Extract(sb.String())
		require.NoError(t, err)
		assert.LessOrEqual(t, len(result.Text), siteql.MaxContentLen)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract("   ")
		require.Error(t, err)
		assert.Equal(t, siteql.EINVALID, siteql.ErrorCode(err))
	})
}
