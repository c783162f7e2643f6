package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"resume-builder/internal/shared/storage/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: withDB(func(ctx context.Context, sqlDB *sql.DB) error {
		return db.RunMigrations(ctx, sqlDB)
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print applied and pending migrations",
	RunE:  withDB(db.MigrationStatus),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE:  withDB(db.RollbackMigration),
}

func init() {
	migrateCmd.AddCommand(migrateStatusCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withDB(fn func(ctx context.Context, sqlDB *sql.DB) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultMigrateOptions()))
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer sqlDB.Close()
		return fn(ctx, sqlDB)
	}
}
