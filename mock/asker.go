package mock

import (
	"context"

	"github.com/mlipski/siteql"
)

var _ siteql.Asker = (*Asker)(nil)

// Asker is a mock implementation of siteql.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question, schema string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question, schema string) (string, error) {
	return a.AskFn(ctx, question, schema)
}

var _ siteql.QueryExecutor = (*QueryExecutor)(nil)

// QueryExecutor is a mock implementation of siteql.QueryExecutor.
type QueryExecutor struct {
	ExecuteQueryFn func(ctx context.Context, query string) (*siteql.QueryResult, error)
}

func (e *QueryExecutor) ExecuteQuery(ctx context.Context, query string) (*siteql.QueryResult, error) {
	return e.ExecuteQueryFn(ctx, query)
}
