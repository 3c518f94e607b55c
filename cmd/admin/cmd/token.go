package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/replyguy/replyguy/internal/config"
	"github.com/replyguy/replyguy/internal/service/identity"
	"github.com/spf13/cobra"
)

func TokenCmd() *cobra.Command {
	var email string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Sign a bearer token for local testing (jwt auth provider only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if cfg.AuthProvider != config.AuthProviderJWT {
				return fmt.Errorf("tokens can only be issued with AUTH_PROVIDER=%s", config.AuthProviderJWT)
			}
			if cfg.JWTSecret == "" {
				return errors.New("SUPABASE_JWT_SECRET is not set")
			}

			token, err := identity.NewJWTVerifier(cfg.JWTSecret, cfg.JWTAudience).Issue(args[0], email, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
