package sqlite

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlipski/siteql"
)

// maxQueryRows caps the number of rows returned to the model to keep
// answer prompts bounded.
const maxQueryRows = 200

// Compile-time interface verification.
var _ siteql.QueryExecutor = (*QueryExecutor)(nil)

// QueryExecutor implements siteql.QueryExecutor against a SQLite database.
// It executes model-generated SQL and therefore only accepts single SELECT
// statements.
type QueryExecutor struct {
	db *DB
}

// NewQueryExecutor creates a new QueryExecutor.
func NewQueryExecutor(db *DB) *QueryExecutor {
	return &QueryExecutor{db: db}
}

// ExecuteQuery runs a read-only query and returns its columns and rows as
// strings. Statements other than a single SELECT are rejected with EINVALID.
func (e *QueryExecutor) ExecuteQuery(ctx context.Context, query string) (*siteql.QueryResult, error) {
	if err := validateReadOnly(query); err != nil {
		return nil, err
	}

	// The keyword check is not sufficient on its own: SQLite allows DML
	// after a CTE, so "WITH x AS (SELECT 1) DELETE ..." starts with WITH.
	// Writes are therefore also blocked at the connection level while the
	// query runs. The pool is capped at one connection, so the pragma
	// applies to the connection the query executes on.
	if _, err := e.db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		return nil, err
	}
	defer e.db.ExecContext(context.WithoutCancel(ctx), "PRAGMA query_only = OFF")

	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, siteql.Errorf(siteql.EINVALID, "query failed: %v", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &siteql.QueryResult{Columns: cols}
	for rows.Next() {
		if len(result.Rows) >= maxQueryRows {
			break
		}

		values := make([]any, len(cols))
		for i := range values {
			var v nullString
			values[i] = &v
		}
		if err := rows.Scan(values...); err != nil {
			return nil, err
		}

		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = string(*v.(*nullString))
		}
		result.Rows = append(result.Rows, row)
	}

	// A write attempt may only surface while stepping through rows.
	if err := rows.Err(); err != nil {
		return nil, siteql.Errorf(siteql.EINVALID, "query failed: %v", err)
	}

	return result, nil
}

// nullString scans any SQLite value into a string, mapping NULL to "".
type nullString string

func (n *nullString) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*n = ""
	case []byte:
		*n = nullString(v)
	case string:
		*n = nullString(v)
	default:
		*n = nullString(fmt.Sprint(v))
	}
	return nil
}

// validateReadOnly rejects anything that is not a single SELECT statement.
func validateReadOnly(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return siteql.Errorf(siteql.EINVALID, "empty query")
	}

	upper := strings.ToUpper(trimmed)
	if !strings.HasPrefix(upper, "SELECT") && !strings.HasPrefix(upper, "WITH") {
		return siteql.Errorf(siteql.EINVALID, "only SELECT queries are allowed")
	}

	// Reject stacked statements. A trailing semicolon is tolerated.
	if idx := strings.Index(trimmed, ";"); idx != -1 && strings.TrimSpace(trimmed[idx+1:]) != "" {
		return siteql.Errorf(siteql.EINVALID, "multiple statements are not allowed")
	}

	return nil
}
