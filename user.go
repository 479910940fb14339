package main

import (
	"github.com/spf13/cobra"

	"academy-api/internal/auth"
	"academy-api/internal/store"
)

// NewUserCmd creates the user subcommand. Staff accounts are only ever
// provisioned here; the API has no sign-up.
func NewUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage staff accounts",
	}

	var email, password string
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a staff account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, false)
			if err != nil {
				return err
			}
			logger := newLogger(cfg)

			pool, err := store.Connect(cmd.Context(), cfg.Database.URL, 1, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			cred, err := store.NewCredentials(pool).Create(cmd.Context(), email, hash)
			if err != nil {
				return err
			}
			cmd.Printf("created user %d <%s>\n", cred.ID, cred.Email)
			return nil
		},
	}
	add.Flags().StringVar(&email, "email", "", "login email")
	add.Flags().StringVar(&password, "password", "", "password, at least 8 characters")
	_ = add.MarkFlagRequired("email")
	_ = add.MarkFlagRequired("password")

	cmd.AddCommand(add)
	return cmd
}
