package siteql

import (
	"context"
	"time"
	"unicode/utf8"
)

// MaxContentLen is the maximum number of characters stored for a single
// page's content. Extractors truncate to this length before a record is
// persisted.
const MaxContentLen = 5000

// Record represents one scraped page stored in the database.
// Records are immutable once created; re-scraping the same URL inserts a
// new row rather than updating an existing one.
type Record struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	ScrapedAt   time.Time `json:"scrapedAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "record URL required")
	}
	if utf8.RuneCountInString(r.Content) > MaxContentLen {
		return Errorf(EINVALID, "record content exceeds %d characters", MaxContentLen)
	}
	return nil
}

// RecordService represents a service for managing scraped records.
type RecordService interface {
	// CreateRecord inserts a new record. The store assigns ID, ContentHash
	// and ScrapedAt.
	CreateRecord(ctx context.Context, rec *Record) error

	// FindRecordByID retrieves a record by ID.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByID(ctx context.Context, id int64) (*Record, error)

	// FindRecords retrieves records matching the filter, most recently
	// scraped first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// DeleteRecordsByURLPrefix removes all records whose URL starts with
	// the literal prefix and returns the number of rows deleted. The prefix
	// is matched as a plain string, not a pattern.
	DeleteRecordsByURLPrefix(ctx context.Context, prefix string) (int64, error)

	// DeleteAllRecords removes every record and returns the number of rows
	// deleted.
	DeleteAllRecords(ctx context.Context) (int64, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	ID        *int64  `json:"id"`
	URL       *string `json:"url"`
	URLPrefix *string `json:"urlPrefix"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordExporter writes records to an external format.
type RecordExporter interface {
	Export(records []*Record) error
}
