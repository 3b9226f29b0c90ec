// Package csv provides CSV export of scraped records.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/mlipski/siteql"
)

// Header is the column order written by Exporter.
var Header = []string{"id", "url", "title", "content", "scraped_at"}

// Ensure Exporter implements siteql.RecordExporter at compile time.
var _ siteql.RecordExporter = (*Exporter)(nil)

// Exporter writes records as CSV with a header row.
type Exporter struct {
	w io.Writer
}

// NewExporter creates an Exporter writing to w.
func NewExporter(w io.Writer) *Exporter {
	return &Exporter{w: w}
}

// Export writes all records to the underlying writer.
func (e *Exporter) Export(records []*siteql.Record) error {
	cw := csv.NewWriter(e.w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, rec := range records {
		row := []string{
			strconv.FormatInt(rec.ID, 10),
			rec.URL,
			rec.Title,
			rec.Content,
			rec.ScrapedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
