package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"dataquality/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row shared by the CSV and XLSX reports.
var columns = []string{
	"Client",
	"Client Type",
	"Agency",
	"Errors",
	"Warnings",
	"Failing Fields",
	"Rules",
	"Messages",
	"Evaluation Error",
}

// Writer wraps csv.Writer for exporting anomalies as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteAnomalies converts anomalies to CSV rows and writes them.
func (w *Writer) WriteAnomalies(anomalies []domain.Anomaly) error {
	for i := range anomalies {
		if err := w.csv.Write(anomalyToRow(&anomalies[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// anomalyToRow flattens one anomaly. Blocking issues come before warnings in the rule and
// message columns.
func anomalyToRow(a *domain.Anomaly) []string {
	row := make([]string, len(columns))
	row[0] = a.CLI
	row[1] = clientTypeLabel(a.ClientType)
	row[2] = a.Agency
	row[8] = a.Error
	if a.Validation == nil {
		return row
	}

	issues := append(slices.Clone(a.Validation.Errors), a.Validation.Warnings...)
	var fields, rules, messages []string
	for _, issue := range issues {
		if !slices.Contains(fields, issue.Field) {
			fields = append(fields, issue.Field)
		}
		rules = append(rules, issue.RuleID)
		messages = append(messages, issue.Message)
	}

	row[3] = strconv.Itoa(len(a.Validation.Errors))
	row[4] = strconv.Itoa(len(a.Validation.Warnings))
	row[5] = strings.Join(fields, ", ")
	row[6] = strings.Join(rules, ", ")
	row[7] = strings.Join(messages, "; ")
	return row
}

func clientTypeLabel(t domain.ClientType) string {
	if !t.Valid() {
		return string(t)
	}
	return fmt.Sprintf("%s (%s)", t, t.Label())
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a report name for use in Content-Disposition.
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

// BuildFilename returns a sanitized filename: {name}_{YYYY-MM-DD}.{ext}
func BuildFilename(name, ext string, at time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), at.Format(time.DateOnly), ext)
}
