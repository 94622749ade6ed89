// Command seedclients converts a bkcli Excel extract into a SQL seed file for the local
// replica. The first row of the first sheet holds bkcli column names; unknown columns are
// ignored and empty cells become NULL.
// Usage: go run ./cmd/seedclients [extract.xlsx] [output.sql]
// Output: db/seeds/bkcli.sql
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/xuri/excelize/v2"

	"dataquality/internal/domain"
)

const batchSize = 500

// bkcliColumns lists the columns created by the bkcli migration.
var bkcliColumns = []string{
	"cli", "tcli", "age",
	"nom", "pre", "nmer", "dna", "viln", "payn", "nat", "sext", "tid", "nid", "vid",
	"rso", "sig", "nrc", "datc", "sec", "fju", "catn", "lienbq",
	"dou", "dmo",
}

// clientRow holds the values of one client in the order of its extract's columns.
type clientRow []string

// extract is the usable part of a bkcli spreadsheet.
type extract struct {
	columns []string
	rows    []clientRow
	skipped int
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "bkcli_extract.xlsx"
	outPath := "db/seeds/bkcli.sql"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ex, err := readExtract(f)
	if err != nil {
		return fmt.Errorf("read extract: %w", err)
	}
	log.Printf("bkcli extract: %d clients, %d rows skipped", len(ex.rows), ex.skipped)

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := writeSeed(out, ex); err != nil {
		return err
	}

	log.Printf("Generated %d clients (%d batches) in %s",
		len(ex.rows), (len(ex.rows)+batchSize-1)/batchSize, outPath)
	return nil
}

// readExtract reads the first sheet. Rows without cli or tcli, and repeated cli values,
// are skipped.
func readExtract(f *excelize.File) (*extract, error) {
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet is empty")
	}

	// Map spreadsheet positions to known columns.
	var positions []int
	ex := &extract{}
	for i, name := range rows[0] {
		name = strings.ToLower(strings.TrimSpace(name))
		if slices.Contains(bkcliColumns, name) && !slices.Contains(ex.columns, name) {
			ex.columns = append(ex.columns, name)
			positions = append(positions, i)
		}
	}
	cliIdx := slices.Index(ex.columns, domain.FieldCLI)
	tcliIdx := slices.Index(ex.columns, domain.FieldTCLI)
	if cliIdx < 0 || tcliIdx < 0 {
		return nil, fmt.Errorf("header must contain %s and %s", domain.FieldCLI, domain.FieldTCLI)
	}

	seen := make(map[string]bool)
	for _, raw := range rows[1:] {
		row := make(clientRow, len(positions))
		for j, pos := range positions {
			row[j] = strings.TrimSpace(cellVal(raw, pos))
		}
		cli := row[cliIdx]
		if cli == "" || row[tcliIdx] == "" || seen[cli] {
			ex.skipped++
			continue
		}
		seen[cli] = true
		ex.rows = append(ex.rows, row)
	}
	return ex, nil
}

func writeSeed(out io.Writer, ex *extract) error {
	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- bkcli seed data generated from an Excel extract.",
		fmt.Sprintf("-- %d clients in batches of %d.", len(ex.rows), batchSize),
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
	}

	for i := 0; i < len(ex.rows); i += batchSize {
		end := min(i+batchSize, len(ex.rows))
		if err := writeBatch(out, ex.columns, ex.rows[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}
	return nil
}

func writeBatch(out io.Writer, columns []string, batch []clientRow) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO bkcli (%s) VALUES\n", strings.Join(columns, ", "))

	for i, row := range batch {
		if i > 0 {
			b.WriteString(",\n")
		}
		values := make([]string, len(row))
		for j, v := range row {
			if v == "" {
				values[j] = "NULL"
			} else {
				values[j] = "'" + escapeSQL(v) + "'"
			}
		}
		fmt.Fprintf(&b, "  (%s)", strings.Join(values, ", "))
	}

	b.WriteString("\nON CONFLICT (cli) DO NOTHING;\n")

	_, err := io.WriteString(out, b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
