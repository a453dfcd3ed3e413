package main

import (
	"context"
	"log/slog"
	"time"

	"ewarrants/internal/infra/mail"
	"ewarrants/internal/usecase"
	"ewarrants/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send today's expiry reminders once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			reminders usecase.ReminderUsecase
			logger    *slog.Logger
		)

		opts := []fx.Option{
			injectInfra(),
			injectRepo(),
			fx.Provide(mail.NewSMTPMailer, impl.NewReminderService),
			fx.Populate(&reminders, &logger),
		}

		return runOnce(cmd.Context(), opts, func(ctx context.Context) error {
			report, err := reminders.SendExpiryReminders(ctx, time.Now())
			if err != nil {
				return err
			}
			logger.Info("Reminders sent",
				slog.Int("users", report.Users),
				slog.Int("notified", report.Notified),
				slog.Int("failed", report.Failed),
			)

			return nil
		})
	},
}
