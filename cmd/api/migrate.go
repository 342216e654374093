package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/database"
)

func migrateCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Long:  "Apply all pending migrations. A negative --steps value rolls back that many migrations.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			version, err := database.Migrate(cfg.Database.URL, steps)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			slog.Info("migrations applied", "version", version)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to apply (0 = all, negative = roll back)")
	return cmd
}
