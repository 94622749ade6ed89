package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"dataquality/internal/domain"
)

const (
	sheetAnomalies = "Anomalies"
	sheetSummary   = "Summary"
)

// ReportMeta describes the selection an anomaly report was built from.
type ReportMeta struct {
	ClientType  domain.ClientType
	Agency      string
	GeneratedAt time.Time
	RuleVersion uint64
}

// WriteXLSX writes an anomaly workbook with an anomalies sheet and a summary sheet.
func WriteXLSX(w io.Writer, page *domain.AnomalyPage, meta ReportMeta) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	idx, err := f.NewSheet(sheetAnomalies)
	if err != nil {
		return fmt.Errorf("xlsx: creating sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("xlsx: removing default sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("xlsx: style: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetAnomalies, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: header: %w", err)
	}
	if err := f.SetRowStyle(sheetAnomalies, 1, 1, bold); err != nil {
		return fmt.Errorf("xlsx: header style: %w", err)
	}

	for i := range page.Anomalies {
		row := anomalyToRow(&page.Anomalies[i])
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: cell: %w", err)
		}
		if err := f.SetSheetRow(sheetAnomalies, cell, &values); err != nil {
			return fmt.Errorf("xlsx: row %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(sheetAnomalies, "A", "C", 14); err != nil {
		return fmt.Errorf("xlsx: widths: %w", err)
	}
	if err := f.SetColWidth(sheetAnomalies, "F", "H", 48); err != nil {
		return fmt.Errorf("xlsx: widths: %w", err)
	}

	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("xlsx: creating sheet: %w", err)
	}
	clientType := "all"
	if meta.ClientType != "" {
		clientType = clientTypeLabel(meta.ClientType)
	}
	agency := meta.Agency
	if agency == "" {
		agency = "all"
	}
	s := page.Summary
	summary := [][]any{
		{"Generated At", meta.GeneratedAt.UTC().Format(time.RFC3339)},
		{"Rule Table Version", meta.RuleVersion},
		{"Client Type", clientType},
		{"Agency", agency},
		{"Offset", page.Offset},
		{"Limit", page.Limit},
		{"Matching Clients", page.Total},
		{"Evaluated", s.Total},
		{"Valid", s.Valid},
		{"Invalid", s.Invalid},
		{"Failed", s.Failed},
		{"Errors", s.TotalErrors},
		{"Warnings", s.TotalWarnings},
	}
	for i, r := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &r); err != nil {
			return fmt.Errorf("xlsx: summary: %w", err)
		}
	}
	if err := f.SetColStyle(sheetSummary, "A", bold); err != nil {
		return fmt.Errorf("xlsx: summary style: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write: %w", err)
	}
	return nil
}
