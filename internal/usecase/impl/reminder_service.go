package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/entity"
	"ewarrants/internal/domain/expiry"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/usecase"
	"ewarrants/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const defaultPerUserTimeout = 30 * time.Second

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	userRepo       repository.UserRepository
	warrantyRepo   repository.WarrantyRepository
	mailer         service.MailService
	loc            *time.Location
	perUserTimeout time.Duration
	concurrency    int
	logger         *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	WarrantyRepo repository.WarrantyRepository
	Mailer       service.MailService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	srv := &reminderService{
		userRepo:       params.UserRepo,
		warrantyRepo:   params.WarrantyRepo,
		mailer:         params.Mailer,
		loc:            referenceLocation(params.Config),
		perUserTimeout: defaultPerUserTimeout,
		concurrency:    1,
		logger:         params.Logger,
	}
	if cfg := params.Config; cfg != nil && cfg.Scheduler != nil {
		if cfg.Scheduler.PerUserTimeout > 0 {
			srv.perUserTimeout = cfg.Scheduler.PerUserTimeout
		}
		if cfg.Scheduler.Concurrency > 1 {
			srv.concurrency = cfg.Scheduler.Concurrency
		}
	}

	return srv
}

func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendExpiryReminders mails every subscriber whose warranties expire exactly
// reminderDays after today. Only the subscriber lookup can fail the run.
func (srv *reminderService) SendExpiryReminders(ctx context.Context, now time.Time) (*usecase.ReminderReport, error) {
	started := time.Now()

	users, err := srv.userRepo.FindNotificationSubscribers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification subscribers")
	}

	today := expiry.Date(now, srv.loc)

	var notified, failed atomic.Int64
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(srv.concurrency)

	for _, user := range users {
		group.Go(func() error {
			sent, err := srv.remindUser(groupCtx, user, today)
			switch {
			case err != nil:
				failed.Add(1)
				srv.log(ctx).Error("Failed to send expiry reminder",
					slog.String("userID", user.ID.String()),
					slog.Any("error", err),
				)
			case sent:
				notified.Add(1)
			}

			// Per-user failures never cancel the others.
			return nil
		})
	}
	_ = group.Wait()

	report := &usecase.ReminderReport{
		Users:    len(users),
		Notified: int(notified.Load()),
		Failed:   int(failed.Load()),
		Duration: time.Since(started),
	}

	srv.log(ctx).Info("Expiry reminders finished",
		slog.String("day", today.Format(dateOnlyLayout)),
		slog.Int("users", report.Users),
		slog.Int("notified", report.Notified),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)

	return report, nil
}

func (srv *reminderService) remindUser(ctx context.Context, user *entity.User, today time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, srv.perUserTimeout)
	defer cancel()

	days := user.EmailNotifications.ReminderDays
	target := expiry.AddDays(today, days)

	warranties, err := srv.warrantyRepo.FindExpiringOn(ctx, user.ID, target)
	if err != nil {
		return false, errors.Wrap(err, "failed to find expiring warranties")
	}
	if len(warranties) == 0 {
		return false, nil
	}

	if err := srv.mailer.SendExpiryReminder(ctx, user.Email, user.FullName, days, warranties); err != nil {
		return false, errors.Wrap(err, "failed to send reminder mail")
	}

	srv.log(ctx).Info("Expiry reminder sent",
		slog.String("userID", user.ID.String()),
		slog.Int("warranties", len(warranties)),
		slog.String("target", target.Format(dateOnlyLayout)),
	)

	return true, nil
}
