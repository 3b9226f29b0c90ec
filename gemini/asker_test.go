package gemini_test

import (
	"context"
	"testing"

	"github.com/mlipski/siteql"
	"github.com/mlipski/siteql/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare SQL",
			text: "SELECT COUNT(*) FROM scraped_data",
			want: "SELECT COUNT(*) FROM scraped_data",
		},
		{
			name: "surrounding whitespace",
			text: "\n  SELECT 1\n",
			want: "SELECT 1",
		},
		{
			name: "fenced with language tag",
			text: "```sql\nSELECT url FROM scraped_data\n```",
			want: "SELECT url FROM scraped_data",
		},
		{
			name: "fenced without language tag",
			text: "```\nSELECT url FROM scraped_data\n```",
			want: "SELECT url FROM scraped_data",
		},
		{
			name: "prose before the fence",
			text: "Here is the query:\n```sql\nSELECT title FROM scraped_data LIMIT 5\n```",
			want: "SELECT title FROM scraped_data LIMIT 5",
		},
		{
			name: "fence on the same line as SQL",
			text: "```SELECT 1```",
			want: "SELECT 1",
		},
		{
			name: "multiline query inside fence",
			text: "```sql\nSELECT url\nFROM scraped_data\nWHERE title LIKE '%go%'\n```",
			want: "SELECT url\nFROM scraped_data\nWHERE title LIKE '%go%'",
		},
		{
			name: "empty response",
			text: "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gemini.ExtractSQL(tt.text))
		})
	}
}

func TestBuildQueryPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildQueryPrompt("how many pages?", "CREATE TABLE scraped_data (id INTEGER)")

	assert.Contains(t, prompt, "<schema>\nCREATE TABLE scraped_data (id INTEGER)\n</schema>")
	assert.Contains(t, prompt, "Question: how many pages?")
	assert.Contains(t, prompt, "SQL query:")
}

func TestBuildAnswerPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes query question and rows", func(t *testing.T) {
		t.Parallel()

		result := &siteql.QueryResult{
			Columns: []string{"url", "title"},
			Rows: [][]string{
				{"https://example.com", "Home"},
				{"https://example.com/about", "About"},
			},
		}

		prompt := gemini.BuildAnswerPrompt("what pages exist?", "SELECT url, title FROM scraped_data", result)

		assert.Contains(t, prompt, "<query>\nSELECT url, title FROM scraped_data\n</query>")
		assert.Contains(t, prompt, "url | title")
		assert.Contains(t, prompt, "https://example.com | Home")
		assert.Contains(t, prompt, "https://example.com/about | About")
		assert.Contains(t, prompt, "Question: what pages exist?")
	})

	t.Run("handles empty result sets", func(t *testing.T) {
		t.Parallel()

		result := &siteql.QueryResult{Columns: []string{"n"}}
		prompt := gemini.BuildAnswerPrompt("count?", "SELECT COUNT(*) AS n FROM scraped_data WHERE 1=0", result)

		assert.Contains(t, prompt, "<result>\nn\n</result>")
	})
}

func TestAsker_Ask(t *testing.T) {
	t.Parallel()

	// Only input validation is covered here; calls that reach the model
	// require network access.

	t.Run("rejects empty question", func(t *testing.T) {
		t.Parallel()

		a := gemini.NewAsker(nil, nil, "")
		_, err := a.Ask(context.Background(), "", "CREATE TABLE scraped_data (id INTEGER)")
		require.Error(t, err)
		assert.Equal(t, siteql.EINVALID, siteql.ErrorCode(err))
	})

	t.Run("rejects empty schema", func(t *testing.T) {
		t.Parallel()

		a := gemini.NewAsker(nil, nil, "")
		_, err := a.Ask(context.Background(), "how many pages?", "")
		require.Error(t, err)
		assert.Equal(t, siteql.EINVALID, siteql.ErrorCode(err))
	})
}
