package main

import (
	"github.com/spf13/cobra"

	"academy-api/internal/store"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Apply or roll back the embedded PostgreSQL schema migrations.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m *store.Migrator) error {
			if err := m.Up(); err != nil {
				return err
			}
			cmd.Println("Migrations applied")
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: withMigrator(func(cmd *cobra.Command, m *store.Migrator) error {
			if err := m.Down(); err != nil {
				return err
			}
			cmd.Println("Migrations rolled back")
			return nil
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: withMigrator(func(cmd *cobra.Command, m *store.Migrator) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			cmd.Printf("version %d (dirty: %t)\n", v, dirty)
			return nil
		}),
	})

	return cmd
}

func withMigrator(fn func(*cobra.Command, *store.Migrator) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, false)
		if err != nil {
			return err
		}

		m, err := store.NewMigrator(cfg.Database.URL)
		if err != nil {
			return err
		}

		runErr := fn(cmd, m)
		if err := m.Close(); err != nil && runErr == nil {
			return err
		}
		return runErr
	}
}
