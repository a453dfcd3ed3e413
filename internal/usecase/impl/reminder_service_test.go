package impl

import (
	"context"
	"testing"
	"time"

	"ewarrants/internal/domain/entity"
	mockRepo "ewarrants/internal/mocks/repository"
	mockSvc "ewarrants/internal/mocks/service"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderServiceFixtures struct {
	service      usecase.ReminderUsecase
	userRepo     *mockRepo.MockUserRepository
	warrantyRepo *mockRepo.MockWarrantyRepository
	mailer       *mockSvc.MockMailService
}

func createTestReminderService(t *testing.T, timezone string, concurrency int) reminderServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	warrantyRepo := mockRepo.NewMockWarrantyRepository(t)
	mailer := mockSvc.NewMockMailService(t)

	cfg := newTestConfig()
	cfg.Scheduler.Timezone = timezone
	cfg.Scheduler.Concurrency = concurrency

	return reminderServiceFixtures{
		service: NewReminderService(ReminderServiceParams{
			UserRepo:     userRepo,
			WarrantyRepo: warrantyRepo,
			Mailer:       mailer,
			Config:       cfg,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		warrantyRepo: warrantyRepo,
		mailer:       mailer,
	}
}

func subscriber(days int) *entity.User {
	return &entity.User{
		ID:                 uuid.New(),
		FullName:           "Sam",
		Email:              uuid.NewString() + "@example.com",
		EmailNotifications: entity.EmailNotifications{Enabled: true, ReminderDays: days},
	}
}

func TestReminderService_TargetDayFromReminderDays(t *testing.T) {
	fx := createTestReminderService(t, "UTC", 1)
	ctx := context.Background()
	user := subscriber(30)
	expiring := []*entity.Warranty{{ID: uuid.New(), ProductName: "Washer"}}

	fx.userRepo.EXPECT().FindNotificationSubscribers(ctx).Return([]*entity.User{user}, nil)
	fx.warrantyRepo.EXPECT().FindExpiringOn(mock.Anything, user.ID, mustDate(t, "2024-07-01")).Return(expiring, nil)
	fx.mailer.EXPECT().SendExpiryReminder(mock.Anything, user.Email, "Sam", 30, expiring).Return(nil)

	report, err := fx.service.SendExpiryReminders(ctx, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Users)
	assert.Equal(t, 1, report.Notified)
	assert.Zero(t, report.Failed)
}

func TestReminderService_TodayInReferenceZone(t *testing.T) {
	fx := createTestReminderService(t, "Asia/Kolkata", 1)
	ctx := context.Background()
	user := subscriber(0)

	// 20:00 UTC on May 31 is already June 1 in Kolkata.
	fx.userRepo.EXPECT().FindNotificationSubscribers(ctx).Return([]*entity.User{user}, nil)
	fx.warrantyRepo.EXPECT().FindExpiringOn(mock.Anything, user.ID, mustDate(t, "2024-06-01")).Return(nil, nil)

	report, err := fx.service.SendExpiryReminders(ctx, time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Zero(t, report.Notified)
}

func TestReminderService_FailuresAreIsolated(t *testing.T) {
	fx := createTestReminderService(t, "UTC", 3)
	ctx := context.Background()
	broken, unlucky, happy, idle := subscriber(7), subscriber(7), subscriber(7), subscriber(7)
	expiring := []*entity.Warranty{{ID: uuid.New(), ProductName: "Drill"}}
	target := mustDate(t, "2024-06-08")

	fx.userRepo.EXPECT().
		FindNotificationSubscribers(ctx).
		Return([]*entity.User{broken, unlucky, happy, idle}, nil)

	fx.warrantyRepo.EXPECT().FindExpiringOn(mock.Anything, broken.ID, target).Return(nil, errors.New("timeout"))
	fx.warrantyRepo.EXPECT().FindExpiringOn(mock.Anything, unlucky.ID, target).Return(expiring, nil)
	fx.warrantyRepo.EXPECT().FindExpiringOn(mock.Anything, happy.ID, target).Return(expiring, nil)
	fx.warrantyRepo.EXPECT().FindExpiringOn(mock.Anything, idle.ID, target).Return([]*entity.Warranty{}, nil)

	fx.mailer.EXPECT().SendExpiryReminder(mock.Anything, unlucky.Email, "Sam", 7, expiring).Return(errors.New("550 mailbox unavailable"))
	fx.mailer.EXPECT().SendExpiryReminder(mock.Anything, happy.Email, "Sam", 7, expiring).Return(nil)

	report, err := fx.service.SendExpiryReminders(ctx, time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReminderReport{Users: 4, Notified: 1, Failed: 2, Duration: report.Duration}, report)
}

func TestReminderService_PerUserDeadline(t *testing.T) {
	fx := createTestReminderService(t, "UTC", 1)
	ctx := context.Background()
	user := subscriber(1)

	fx.userRepo.EXPECT().FindNotificationSubscribers(ctx).Return([]*entity.User{user}, nil)
	fx.warrantyRepo.EXPECT().
		FindExpiringOn(mock.Anything, user.ID, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ uuid.UUID, _ time.Time) ([]*entity.Warranty, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)

			return nil, nil
		})

	_, err := fx.service.SendExpiryReminders(ctx, time.Now())
	require.NoError(t, err)
}

func TestReminderService_SubscriberLookupFails(t *testing.T) {
	fx := createTestReminderService(t, "UTC", 1)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindNotificationSubscribers(ctx).Return(nil, errors.New("db down"))

	_, err := fx.service.SendExpiryReminders(ctx, time.Now())
	assert.Error(t, err)
}
