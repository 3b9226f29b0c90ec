// Package gemini implements the query agent bridge using Google Gemini.
// The model generates a SQL query for a natural language question, siteql
// executes it read-only, and a second model call turns the result rows into
// a textual answer.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlipski/siteql"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements siteql.Asker at compile time.
var _ siteql.Asker = (*Asker)(nil)

// Asker implements siteql.Asker using Google Gemini.
type Asker struct {
	client   *genai.Client
	executor siteql.QueryExecutor
	model    string
}

// NewAsker creates a new Asker. The executor runs the generated SQL against
// the store; it must enforce read-only access.
func NewAsker(client *genai.Client, executor siteql.QueryExecutor, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, executor: executor, model: model}
}

// Ask answers a natural language question about the scraped data.
func (a *Asker) Ask(ctx context.Context, question, schema string) (string, error) {
	if question == "" {
		return "", siteql.Errorf(siteql.EINVALID, "question required")
	}
	if schema == "" {
		return "", siteql.Errorf(siteql.EINVALID, "schema context required")
	}

	query, err := a.generateQuery(ctx, question, schema)
	if err != nil {
		return "", err
	}

	result, err := a.executor.ExecuteQuery(ctx, query)
	if err != nil {
		return "", err
	}

	return a.generateAnswer(ctx, question, query, result)
}

// generateQuery asks the model for a single SELECT statement.
func (a *Asker) generateQuery(ctx context.Context, question, schema string) (string, error) {
	text, err := a.generate(ctx, BuildQueryPrompt(question, schema), buildQueryConfig())
	if err != nil {
		return "", err
	}

	query := ExtractSQL(text)
	if query == "" {
		return "", siteql.Errorf(siteql.EUNAVAILABLE, "model returned no SQL query")
	}
	return query, nil
}

// generateAnswer asks the model to phrase the query result as an answer.
func (a *Asker) generateAnswer(ctx context.Context, question, query string, result *siteql.QueryResult) (string, error) {
	return a.generate(ctx, BuildAnswerPrompt(question, query, result), buildAnswerConfig())
}

func (a *Asker) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", siteql.Errorf(siteql.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

func buildQueryConfig() *genai.GenerateContentConfig {
	temp := float32(0.0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You translate questions about a SQLite database into SQL. " +
					"Respond with exactly one SELECT statement for the given schema, " +
					"using SQLite syntax, and nothing else. Never modify data.",
			}},
		},
		Temperature: &temp,
	}
}

func buildAnswerConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about scraped web data. " +
					"Answer based only on the query result provided. " +
					"If the result does not answer the question, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildQueryPrompt builds the prompt asking the model to generate SQL.
func BuildQueryPrompt(question, schema string) string {
	var sb strings.Builder
	sb.WriteString("<schema>\n")
	sb.WriteString(schema)
	sb.WriteString("\n</schema>\n\n")
	fmt.Fprintf(&sb, "Question: %s\n\nSQL query:", question)
	return sb.String()
}

// BuildAnswerPrompt builds the prompt asking the model to phrase the query
// result as a natural language answer.
func BuildAnswerPrompt(question, query string, result *siteql.QueryResult) string {
	var sb strings.Builder
	sb.WriteString("<query>\n")
	sb.WriteString(query)
	sb.WriteString("\n</query>\n\n<result>\n")
	sb.WriteString(strings.Join(result.Columns, " | "))
	sb.WriteString("\n")
	for _, row := range result.Rows {
		sb.WriteString(strings.Join(row, " | "))
		sb.WriteString("\n")
	}
	sb.WriteString("</result>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}

// ExtractSQL strips markdown code fences and surrounding prose from a model
// response, returning the bare SQL statement.
func ExtractSQL(text string) string {
	text = strings.TrimSpace(text)

	if idx := strings.Index(text, "```"); idx != -1 {
		text = text[idx+3:]
		// Drop a language tag like "sql" on the fence line.
		if nl := strings.Index(text, "\n"); nl != -1 {
			first := strings.TrimSpace(text[:nl])
			if len(first) <= 10 && !strings.ContainsAny(first, " \t") {
				text = text[nl+1:]
			}
		}
		if end := strings.Index(text, "```"); end != -1 {
			text = text[:end]
		}
	}

	return strings.TrimSpace(text)
}
