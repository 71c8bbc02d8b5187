// Package export writes fetched extraction results to CSV or XLSX files.
// It renders the decoded payloads as-is: ragged table rows stay ragged and
// key-value order is preserved.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"rfpdocs/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter wraps csv.Writer for exporting extraction data.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteKeyValues writes a Key,Value header followed by the pairs in input
// order.
func (w *CSVWriter) WriteKeyValues(pairs []domain.KeyValuePair) error {
	if err := w.csv.Write([]string{"Key", "Value"}); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := w.csv.Write([]string{p.Key, p.Value}); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable writes one extracted table: a title row, then each data row
// exactly as extracted.
func (w *CSVWriter) WriteTable(t domain.ExtractedTable) error {
	if err := w.csv.Write([]string{t.Name}); err != nil {
		return err
	}
	for _, row := range t.Rows {
		// csv.Writer rejects empty records.
		if len(row) == 0 {
			row = []string{""}
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// WriteExtraction writes the whole extraction: key-values first, then every
// table, separated by blank records.
func (w *CSVWriter) WriteExtraction(ex *domain.Extraction) error {
	pairs := domain.ParseKeyValues(ex.KeyValuesJSON)
	tables := domain.ParseTables(ex.TablesJSON)

	if len(pairs) > 0 {
		if err := w.WriteKeyValues(pairs); err != nil {
			return err
		}
	}
	for i, t := range tables {
		if len(pairs) > 0 || i > 0 {
			if err := w.csv.Write([]string{""}); err != nil {
				return err
			}
		}
		if err := w.WriteTable(t); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document name for use as an output filename.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized output filename.
// Format: {sanitized_document_name}_{YYYY-MM-DD}.{ext}
func BuildFilename(documentName, ext string) string {
	sanitized := SanitizeFilename(documentName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.%s", sanitized, date, ext)
}
