package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dataquality/internal/domain"
	"dataquality/internal/service"
	"dataquality/internal/validator"
	"dataquality/internal/validator/client"
)

func newValidateCmd(rulesFile *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <records.json>",
		Short: "Validate client records from a JSON file",
		Long:  "Validate one record (a JSON object) or a batch (a JSON array) against the rule table. Exits non-zero when any record is invalid.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading records: %w", err)
			}
			records, err := decodeRecords(data)
			if err != nil {
				return err
			}

			table, err := client.LoadTable(*rulesFile)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}
			svc := service.NewValidationService(validator.NewEngine(table, client.NewRegistry()))

			report, err := svc.ValidateBatch(records)
			if err != nil {
				return fmt.Errorf("validate failed: %w", err)
			}

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			case "table":
				fmt.Fprint(cmd.OutOrStdout(), renderReport(report))
			default:
				return fmt.Errorf("unknown format %q (want json or table)", format)
			}

			if report.Summary.Invalid > 0 {
				return fmt.Errorf("validation failed: %d of %d record(s) invalid", report.Summary.Invalid, report.Summary.Total)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format: json or table")
	return cmd
}

// decodeRecords accepts a single JSON object or an array of objects. Array entries that
// are not objects are kept as nil so the batch reports them as failed.
func decodeRecords(data []byte) ([]domain.ClientRecord, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if data[0] != '[' {
		rec, err := domain.DecodeClientRecord(data)
		if err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
		return []domain.ClientRecord{rec}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding records: %w", err)
	}
	if len(raw) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	records := make([]domain.ClientRecord, len(raw))
	for i, r := range raw {
		records[i], _ = domain.DecodeClientRecord(r)
	}
	return records, nil
}
