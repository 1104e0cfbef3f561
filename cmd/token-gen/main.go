// Command token-gen issues a staff access token for local testing of the
// protected job and audit-log endpoints.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"rugcare.backend/internal/config"
	"rugcare.backend/pkg/jwt"
)

var (
	fatalfFn        = log.Fatalf
	loadCfg         = config.Load
	generateTokenFn = generateToken
)

const defaultUserID = "00000000-0000-0000-0000-000000000001"

type tokenOptions struct {
	email  string
	role   string
	expiry time.Duration
}

func resolveUserID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultUserID
}

func generateToken(cfg *config.Config, userID string, opts tokenOptions) (string, error) {
	svc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Audience)
	return svc.GenerateToken(userID, opts.email, opts.role, opts.expiry)
}

func newRootCmd() *cobra.Command {
	opts := tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token-gen [userId]",
		Short: "Issue a bearer token for the staff endpoints",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := resolveUserID(args)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Generating access token for user: %s\n", userID)

			token, err := generateTokenFn(loadCfg(), userID, opts)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			fmt.Fprintf(out, "Bearer %s\n", token)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.email, "email", "", "email claim")
	cmd.Flags().StringVar(&opts.role, "role", "authenticated", "role claim")
	cmd.Flags().DurationVar(&opts.expiry, "expiry", time.Hour, "token lifetime")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fatalfFn("%v", err)
	}
}
