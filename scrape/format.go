package scrape

import "fmt"

// TruncateURL shortens a URL for progress display, keeping the end which is
// more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(url) <= maxLen {
		return url
	}
	if maxLen < 4 {
		return url[:maxLen]
	}
	return "..." + url[len(url)-maxLen+3:]
}

// FormatRate formats a success ratio as a percentage.
func FormatRate(saved, total int) string {
	if total == 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(saved)/float64(total)*100)
}
