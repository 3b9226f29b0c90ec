package siteql

import "context"

// Asker answers natural language questions about the scraped data.
// Implementations delegate SQL generation to a hosted language model and
// execute the generated query against the store.
type Asker interface {
	// Ask answers a natural language question. The schema context describes
	// the tables available to the model (see sqlite.DB.Schema).
	Ask(ctx context.Context, question string, schema string) (string, error)
}

// QueryResult holds the outcome of a read-only SQL query.
type QueryResult struct {
	Columns []string
	Rows    [][]string
}

// QueryExecutor runs read-only SQL against the store on behalf of an Asker.
// Implementations must reject statements that modify data.
type QueryExecutor interface {
	ExecuteQuery(ctx context.Context, query string) (*QueryResult, error)
}
