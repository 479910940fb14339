package main

import (
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"academy-api/internal/config"
	"academy-api/internal/logging"
)

const serviceName = "academy-api"

// NewRootCmd creates the root command. Without a subcommand it serves.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   serviceName,
		Short: "Academy API - players, coaches and match schedules",
		Long: `academy-api is the REST backend of the football academy site.
It serves public listings of players, coaches and match schedules and lets
authenticated staff manage them, storing photos on Cloudinary.`,
		SilenceUsage: true,
		RunE:         runServe,
	}

	config.Flags(cmd.PersistentFlags())

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewUserCmd())

	return cmd
}

// loadConfig reads the --config file, the environment and flags.
// Full validation is for the server; maintenance commands only need the
// database URL.
func loadConfig(cmd *cobra.Command, full bool) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	if full {
		return cfg, cfg.Validate()
	}
	if cfg.Database.URL == "" {
		return config.Config{}, oops.Code("CONFIG_INVALID").Errorf("DATABASE_URL is required")
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *slog.Logger {
	return logging.Setup(serviceName, version, cfg.LogFormat, nil)
}
