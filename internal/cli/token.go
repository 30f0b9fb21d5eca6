package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vickinc/eazybizy/internal/platform/config"
	"github.com/vickinc/eazybizy/internal/utils/auth"
)

// newTokenCmd issues a JWT signed with the server's configured secret,
// for scripts and local testing against the API.
func newTokenCmd() *cobra.Command {
	var (
		userID string
		expiry time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for a user ID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if expiry <= 0 {
				expiry = cfg.JWTExpiryDuration
			}
			token, err := auth.GenerateJWT(userID, cfg.JWTSecret, expiry, cfg.JWTIssuer)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "User ID recorded in audit fields")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "Token lifetime; defaults to JWT_EXPIRY_DURATION")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
