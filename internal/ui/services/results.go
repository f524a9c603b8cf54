package services

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/termsearch/internal/search"
)

// FormatSize renders a byte count with a binary unit.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatFileResult renders one result as a single line.
func FormatFileResult(r search.FileResult) string {
	var sb strings.Builder
	if r.IsDir() {
		sb.WriteString("[dir]  ")
	} else {
		sb.WriteString("[file] ")
	}
	sb.WriteString(r.DisplayName())

	var details []string
	if r.Path != "" && r.Path != r.DisplayName() {
		details = append(details, r.Path)
	}
	if !r.IsDir() && r.Size > 0 {
		details = append(details, FormatSize(r.Size))
	}
	if r.Modified != "" {
		details = append(details, r.Modified)
	}
	if len(details) > 0 {
		sb.WriteString("  ")
		sb.WriteString(strings.Join(details, "  "))
	}
	return sb.String()
}

// FormatResults renders a results list, one line per file.
func FormatResults(results []search.FileResult) string {
	if len(results) == 0 {
		return "No results found."
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, FormatFileResult(r))
	}
	return strings.Join(lines, "\n")
}

// FormatKeywords renders the keywords line shown above results.
func FormatKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return ""
	}
	return "Keywords: " + strings.Join(keywords, ", ")
}
