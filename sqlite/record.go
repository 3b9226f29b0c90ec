package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mlipski/siteql"
)

// Compile-time interface verification.
var _ siteql.RecordService = (*RecordService)(nil)

// RecordService implements siteql.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := []byte{
		byte(h >> 56), byte(h >> 48), byte(h >> 40), byte(h >> 32),
		byte(h >> 24), byte(h >> 16), byte(h >> 8), byte(h),
	}
	return hex.EncodeToString(b)
}

// CreateRecord inserts a new record. The store assigns ID, ContentHash and
// ScrapedAt. Repeated URLs always produce new rows.
func (s *RecordService) CreateRecord(ctx context.Context, rec *siteql.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	rec.ScrapedAt = time.Now().UTC()
	rec.ContentHash = hashContent(rec.Content)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO scraped_data (url, title, content, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.URL, rec.Title, rec.Content, rec.ContentHash, rec.ScrapedAt.Format(time.RFC3339Nano))
	if err != nil {
		return err
	}

	rec.ID, err = result.LastInsertId()
	return err
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id int64) (*siteql.Record, error) {
	var rec siteql.Record
	var scrapedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, content, content_hash, scraped_at
		FROM scraped_data
		WHERE id = ?
	`, id).Scan(&rec.ID, &rec.URL, &rec.Title, &rec.Content, &rec.ContentHash, &scrapedAt)

	if err == sql.ErrNoRows {
		return nil, siteql.Errorf(siteql.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}

	if rec.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}

	return &rec, nil
}

// FindRecords retrieves records matching the filter, most recently scraped
// first.
func (s *RecordService) FindRecords(ctx context.Context, filter siteql.RecordFilter) ([]*siteql.Record, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, content, content_hash, scraped_at FROM scraped_data WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.URLPrefix != nil {
		query.WriteString(" AND url LIKE ? ESCAPE '\\'")
		args = append(args, escapeLike(*filter.URLPrefix)+"%")
	}

	query.WriteString(" ORDER BY scraped_at DESC, id DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*siteql.Record
	for rows.Next() {
		var rec siteql.Record
		var scrapedAt string

		if err := rows.Scan(&rec.ID, &rec.URL, &rec.Title, &rec.Content, &rec.ContentHash, &scrapedAt); err != nil {
			return nil, err
		}

		if rec.ScrapedAt, err = parseRFC3339(scrapedAt, "scraped_at"); err != nil {
			return nil, err
		}

		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// DeleteRecordsByURLPrefix removes all records whose URL starts with the
// literal prefix. The prefix is escaped so LIKE metacharacters in the input
// cannot widen the match, and the statement is fully parameterized.
func (s *RecordService) DeleteRecordsByURLPrefix(ctx context.Context, prefix string) (int64, error) {
	if prefix == "" {
		return 0, siteql.Errorf(siteql.EINVALID, "URL prefix required")
	}

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM scraped_data WHERE url LIKE ? ESCAPE '\\'",
		escapeLike(prefix)+"%")
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// DeleteAllRecords removes every record.
func (s *RecordService) DeleteAllRecords(ctx context.Context) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM scraped_data")
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// escapeLike escapes LIKE pattern metacharacters in s so it matches only
// as a literal string.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
