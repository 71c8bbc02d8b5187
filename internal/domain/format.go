package domain

import (
	"fmt"
	"strings"
	"time"
)

// FormatFileSize renders a byte count for display (B / KB / MB).
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

// FormatDate renders a timestamp for display.
func FormatDate(t time.Time) string {
	return t.Local().Format("Jan 2, 2006 15:04")
}

// FileTypeLabel classifies a MIME type into a human-readable label. This is
// display-only; it is not part of upload validation.
func FileTypeLabel(contentType string) string {
	switch {
	case strings.Contains(contentType, "pdf"):
		return "PDF Document"
	// Checked before the word/document cases: the xlsx MIME type also
	// contains the substring "document".
	case strings.Contains(contentType, "sheet"), strings.Contains(contentType, "excel"):
		return "Excel Spreadsheet"
	case strings.Contains(contentType, "word"), strings.Contains(contentType, "document"):
		return "Word Document"
	case strings.Contains(contentType, "text/plain"):
		return "Text File"
	default:
		return "Document"
	}
}
