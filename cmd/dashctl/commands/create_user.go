package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ai_dashboard_server/internal/auth"
	"ai_dashboard_server/internal/store"
)

func createUserCmd(opts *options) *cobra.Command {
	var (
		email       string
		password    string
		displayName string
	)
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Create a user account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cmd.Context(), cfg.DatabaseDriver, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer st.Close()

			svc, err := auth.NewService(st, auth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer, TTL: cfg.JWTTTL})
			if err != nil {
				return err
			}
			session, err := svc.Signup(cmd.Context(), email, password, displayName)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created user %s (%s)\n", session.User.Email, session.User.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (8-72 characters)")
	cmd.Flags().StringVar(&displayName, "name", "", "display name (defaults to the email's local part)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
