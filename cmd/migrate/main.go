// Command migrate runs schema operations for the modmail database.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/PumPum7/modmail/internal/config"
	"github.com/PumPum7/modmail/internal/database"
	"github.com/PumPum7/modmail/internal/middleware"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var steps int

func main() {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Database migration tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newUpCommand(), newDownCommand(), newStatusCommand(), newAutoCommand())

	if err := root.ExecuteContext(context.Background()); err != nil {
		middleware.Logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending SQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			if err := database.RunMigrations(cmd.Context(), db); err != nil {
				return fmt.Errorf("sql migrations failed: %w", err)
			}
			middleware.Logger.Info("sql migrations applied")
			return nil
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, err := connect()
			if err != nil {
				return err
			}
			if err := database.RollbackMigration(cmd.Context(), db, steps); err != nil {
				return fmt.Errorf("rollback failed: %w", err)
			}
			middleware.Logger.Info("rolled back migrations", slog.Int("steps", steps))
			return nil
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the schema policy and pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := connect()
			if err != nil {
				return err
			}
			status, err := database.GetSchemaStatus(cmd.Context(), db, cfg)
			if err != nil {
				return fmt.Errorf("schema status failed: %w", err)
			}
			middleware.Logger.Info("schema status",
				slog.String("mode", status.Mode),
				slog.String("env", status.Environment),
				slog.Bool("run_sql", status.WillRunSQL),
				slog.Bool("run_auto", status.WillRunAutoMigrate),
				slog.Int64("version", status.CurrentVersion),
				slog.Int("pending", len(status.PendingVersions)),
			)
			for _, v := range status.PendingVersions {
				middleware.Logger.Info("pending migration", slog.Int64("version", v))
			}
			return nil
		},
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Create or update tables from the GORM models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, err := connect()
			if err != nil {
				return err
			}
			cfg.DBSchemaMode = database.SchemaModeAuto
			if err := database.ApplySchema(cmd.Context(), db, cfg); err != nil {
				return fmt.Errorf("auto schema apply failed: %w", err)
			}
			middleware.Logger.Info("automigrations applied")
			return nil
		},
	}
}

func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	middleware.ConfigureLogger(cfg.LogLevel, cfg.LogFormat, cfg.Env)

	db, err := database.ConnectWithOptions(cfg, database.ConnectOptions{ApplySchema: false})
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	return cfg, db, nil
}

