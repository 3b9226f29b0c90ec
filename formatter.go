package siteql

import "strings"

// FormatRecords formats records for display.
// Uses the title if available, falls back to the URL.
// Records are separated by blank lines.
func FormatRecords(recs []*Record) string {
	if len(recs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(recs))
	for _, rec := range recs {
		header := rec.Title
		if header == "" {
			header = rec.URL
		}
		parts = append(parts, "## "+header+"\n"+rec.URL+"\n\n"+rec.Content)
	}

	return strings.Join(parts, "\n\n")
}
