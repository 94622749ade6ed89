package cli

import "github.com/spf13/cobra"

var version = "dev"

func newRootCmd() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:           "dqctl",
		Short:         "Client data quality toolbox",
		Long:          "dqctl validates bkcli client records offline, prints the rule table and mints operator tokens for the data quality API.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&rulesFile, "rules", "", "YAML rule table seed (defaults to the built-in rules)")

	cmd.AddCommand(newValidateCmd(&rulesFile))
	cmd.AddCommand(newRulesCmd(&rulesFile))
	cmd.AddCommand(newTokenCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
