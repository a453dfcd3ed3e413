package main

import (
	"context"
	"log/slog"

	"ewarrants/internal/domain/lifecycle"
	"ewarrants/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			db     *gorm.DB
			logger *slog.Logger
		)

		return runOnce(cmd.Context(), []fx.Option{injectInfra(), fx.Populate(&db, &logger)}, func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			logger.Info("Migrations applied")

			return nil
		})
	},
}

// runOnce starts a short-lived fx app, runs fn and stops the app.
func runOnce(ctx context.Context, opts []fx.Option, fn func(ctx context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	app := fx.New(append(opts, fx.NopLogger)...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return err
	}

	return runErr
}
