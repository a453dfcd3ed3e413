package usecase

import (
	"context"
	"time"
)

// ReminderReport summarizes one reminder run.
type ReminderReport struct {
	Users    int
	Notified int
	Failed   int
	Duration time.Duration
}

// ReminderUsecase sends expiry reminder emails.
type ReminderUsecase interface {
	// SendExpiryReminders handles every subscribed user independently. Per-user
	// failures are logged and counted, never returned.
	SendExpiryReminders(ctx context.Context, now time.Time) (*ReminderReport, error)
}
