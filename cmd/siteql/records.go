package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mlipski/siteql"
	sqlcsv "github.com/mlipski/siteql/csv"
	"github.com/mlipski/siteql/scrape"
)

// Run executes the records command.
func (c *RecordsCmd) Run(deps *Dependencies) error {
	recs, err := deps.Records.FindRecords(deps.Ctx, siteql.RecordFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteql.ErrorMessage(err))
		return err
	}

	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'siteql scrape' to collect some.")
		return nil
	}

	if c.CSV != "" {
		return c.exportCSV(deps, recs)
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, siteql.FormatRecords(recs))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d records:\n\n", len(recs))
	for _, rec := range recs {
		title := rec.Title
		if title == "" {
			title = rec.URL
		}
		fmt.Fprintf(deps.Stdout, "  %4d  %s  %s\n        %s\n",
			rec.ID, rec.ScrapedAt.Format(time.DateTime), title, scrape.TruncateURL(rec.URL, 70))
	}

	return nil
}

// exportCSV writes the records to the file named by --csv.
func (c *RecordsCmd) exportCSV(deps *Dependencies, recs []*siteql.Record) error {
	f, err := os.Create(c.CSV)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	defer f.Close()

	if err := sqlcsv.NewExporter(f).Export(recs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", len(recs), c.CSV)
	return nil
}
