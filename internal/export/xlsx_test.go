package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dataquality/internal/domain"
)

func TestWriteXLSX(t *testing.T) {
	page := &domain.AnomalyPage{
		Anomalies: sampleAnomalies(),
		Summary:   domain.BatchSummary{Total: 10, Valid: 8, Invalid: 2, Failed: 1, TotalErrors: 2, TotalWarnings: 1},
		Total:     42,
		Offset:    0,
		Limit:     10,
	}
	meta := ReportMeta{
		ClientType:  domain.ClientTypeIndividual,
		GeneratedAt: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
		RuleVersion: 3,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, page, meta))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Anomalies", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Anomalies")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Client", rows[0][0])
	assert.Equal(t, "123", rows[1][0])
	assert.Equal(t, "nid, sext", rows[1][5])

	v, err := f.GetCellValue("Summary", "B7")
	require.NoError(t, err)
	assert.Equal(t, "42", v)
	v, _ = f.GetCellValue("Summary", "B3")
	assert.Equal(t, "1 (individual)", v)
	v, _ = f.GetCellValue("Summary", "B4")
	assert.Equal(t, "all", v)
}
