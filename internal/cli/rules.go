package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dataquality/internal/domain"
	"dataquality/internal/validator/client"
)

func newRulesCmd(rulesFile *string) *cobra.Command {
	var (
		clientType string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the rule table",
		Long:  "Print the rule table in evaluation order. The yaml output is a valid seed file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := client.LoadTable(*rulesFile)
			if err != nil {
				return fmt.Errorf("loading rules: %w", err)
			}

			rules := table.Rules()
			if clientType != "" {
				ct := domain.ClientType(clientType)
				if !ct.Valid() {
					return domain.ErrInvalidClientType
				}
				rules = table.RulesByClientType(ct)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				fmt.Fprint(out, renderRules(rules, table.Version()))
			case "yaml":
				return client.EncodeRules(out, rules)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rules)
			default:
				return fmt.Errorf("unknown format %q (want table, yaml or json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&clientType, "client-type", "", "Only rules applying to this client type (1, 2 or 3)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, yaml or json")
	return cmd
}
