package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dataquality/internal/config"
	"dataquality/internal/domain"
	"dataquality/internal/service"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		email   string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an operator access token",
		Long:  "Sign an access token with the server's JWT settings (DQ_JWT_*). The token is printed on stdout, its expiry on stderr.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			authSvc := service.NewAuthService(cfg.JWT)
			token, expires, err := authSvc.IssueToken(service.IssueTokenInput{
				Subject: subject,
				Email:   email,
				Role:    domain.UserRole(role),
				TTL:     ttl,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expires.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Operator identifier (required)")
	cmd.Flags().StringVar(&email, "email", "", "Operator email")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleAdmin), "Role: admin, auditor or user")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to DQ_JWT_ACCESS_EXPIRY)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
