package main

import (
	"context"
	"fmt"
	"os"

	"enroll/config"
	logs "enroll/internal/infra/log"
	"enroll/internal/infra/persistence/migrations"
	"enroll/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the enroll database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newMigrationCmd("up", "Apply all pending migrations", (*migrations.Migrator).Up),
		newMigrationCmd("down", "Roll back the most recent migration", (*migrations.Migrator).Down),
		newMigrationCmd("status", "Show the state of every migration", (*migrations.Migrator).Status),
		newVersionCmd(),
	)

	return cmd
}

func newMigrationCmd(use, short string, action func(*migrations.Migrator, context.Context) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrations.Migrator) error {
				return action(m, cmd.Context())
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *migrations.Migrator) error {
				version, err := m.Version(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("schema version: %d\n", version)

				return nil
			})
		},
	}
}

// withMigrator opens the configured primary database for the duration of fn.
func withMigrator(fn func(*migrations.Migrator) error) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return fn(migrations.NewMigrator(sqlDB, logger))
}
