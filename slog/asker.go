package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mlipski/siteql"
)

// Ensure LoggingAsker implements siteql.Asker.
var _ siteql.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with timing and outcome logging.
type LoggingAsker struct {
	next   siteql.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next siteql.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker and logs the outcome. Question and
// answer text are not logged, only their lengths.
func (a *LoggingAsker) Ask(ctx context.Context, question, schema string) (string, error) {
	begin := time.Now()
	answer, err := a.next.Ask(ctx, question, schema)
	if err != nil {
		a.logger.Error("ask failed",
			"question_len", len(question),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	a.logger.Info("ask",
		"question_len", len(question),
		"answer_len", len(answer),
		"duration", time.Since(begin),
	)
	return answer, nil
}
