package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newWorkbook(t *testing.T, rows [][]any) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	return f
}

func TestReadExtract(t *testing.T) {
	f := newWorkbook(t, [][]any{
		{"CLI", "TCLI", "Comment", "nom", "nid"},
		{"100", "1", "ignored", "O'Neil", "AB987654"},
		{"100", "1", "", "Duplicate", ""},
		{"", "2", "", "No id", ""},
		{"200", "2", "", "", ""},
	})

	ex, err := readExtract(f)
	require.NoError(t, err)

	assert.Equal(t, []string{"cli", "tcli", "nom", "nid"}, ex.columns)
	require.Len(t, ex.rows, 2)
	assert.Equal(t, clientRow{"100", "1", "O'Neil", "AB987654"}, ex.rows[0])
	assert.Equal(t, clientRow{"200", "2", "", ""}, ex.rows[1])
	assert.Equal(t, 2, ex.skipped)
}

func TestReadExtract_MissingIdentityColumns(t *testing.T) {
	f := newWorkbook(t, [][]any{{"cli", "nom"}, {"100", "Doe"}})

	_, err := readExtract(f)
	assert.Error(t, err)
}

func TestWriteSeed(t *testing.T) {
	ex := &extract{
		columns: []string{"cli", "tcli", "nom"},
		rows:    []clientRow{{"100", "1", "O'Neil"}, {"200", "2", ""}},
	}

	var buf bytes.Buffer
	require.NoError(t, writeSeed(&buf, ex))

	out := buf.String()
	assert.Contains(t, out, "BEGIN;")
	assert.Contains(t, out, "INSERT INTO bkcli (cli, tcli, nom) VALUES")
	assert.Contains(t, out, "('100', '1', 'O''Neil')")
	assert.Contains(t, out, "('200', '2', NULL)")
	assert.Contains(t, out, "ON CONFLICT (cli) DO NOTHING;")
	assert.Contains(t, out, "COMMIT;")
}
