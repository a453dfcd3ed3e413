// Package scheduler runs the daily expiry reminder job.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"ewarrants/config"
	"ewarrants/internal/delivery"
	"ewarrants/internal/domain/lifecycle"
	"ewarrants/internal/errors"
	"ewarrants/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// ErrSchedulerAlreadyStarted is returned when a second scheduler is started in
// the same process. Reminders must be sent by one scheduler only.
var ErrSchedulerAlreadyStarted = errors.New("reminder scheduler already started")

var running atomic.Bool

// Params holds dependencies for the scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	Reminders usecase.ReminderUsecase
}

type reminderScheduler struct {
	cron      *cron.Cron
	spec      string
	enabled   bool
	owned     atomic.Bool
	reminders usecase.ReminderUsecase
	logger    *slog.Logger
	now       func() time.Time
}

// New builds the daily job from scheduler.time and scheduler.timezone.
func New(params Params) (delivery.Delivery, error) {
	cfg := params.Cfg.Scheduler
	if cfg == nil {
		cfg = &config.SchedulerConfig{Time: "08:00", Timezone: "UTC"}
	}

	spec, err := cronSpec(cfg.Time)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	cronLogger := &slogCronLogger{logger: params.Logger}
	s := &reminderScheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		spec:      spec,
		enabled:   cfg.Enabled,
		reminders: params.Reminders,
		logger:    params.Logger,
		now:       time.Now,
	}
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return nil, errors.Wrapf(err, "invalid cron spec %q", spec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve starts the cron loop and returns; jobs run on cron's own goroutine.
func (s *reminderScheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("Reminder scheduler disabled")

		return nil
	}
	if !running.CompareAndSwap(false, true) {
		return ErrSchedulerAlreadyStarted
	}
	s.owned.Store(true)

	s.cron.Start()

	var next time.Time
	if entries := s.cron.Entries(); len(entries) > 0 {
		next = entries[0].Next
	}
	s.logger.Info("Reminder scheduler started",
		slog.String("spec", s.spec),
		slog.String("location", s.cron.Location().String()),
		slog.Time("next", next),
	)

	return nil
}

func (s *reminderScheduler) run() {
	ctx := context.Background()
	report, err := s.reminders.SendExpiryReminders(ctx, s.now())
	if err != nil {
		s.logger.Error("Reminder run failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Reminder run completed",
		slog.Int("users", report.Users),
		slog.Int("notified", report.Notified),
		slog.Int("failed", report.Failed),
	)
}

func (s *reminderScheduler) stop(ctx context.Context) error {
	if !s.owned.CompareAndSwap(true, false) {
		return nil
	}
	defer running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Stopping reminder scheduler")

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "reminder job still running")
	}
}

// cronSpec turns "HH:MM" into a daily cron expression.
func cronSpec(timeOfDay string) (string, error) {
	t, err := time.Parse("15:04", timeOfDay)
	if err != nil {
		return "", errors.Wrapf(err, "invalid scheduler time %q, expected HH:MM", timeOfDay)
	}

	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
