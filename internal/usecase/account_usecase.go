package usecase

import (
	"context"

	"ewarrants/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationPrefsInput updates reminder preferences. Both fields are required.
type NotificationPrefsInput struct {
	Enabled      *bool `json:"enabled" validate:"required"`
	ReminderDays *int  `json:"reminderDays" validate:"required,min=0"`
}

// DeleteAccountInput confirms account deletion.
type DeleteAccountInput struct {
	Password string `json:"password" validate:"required"`
}

// ExportFile is a rendered download.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// AccountUsecase covers profile, preferences and account lifecycle operations.
type AccountUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	UpdateNotificationPrefs(ctx context.Context, userID uuid.UUID, input *NotificationPrefsInput) (*entity.EmailNotifications, error)

	// DeleteAccount removes every warranty of the user, then the user.
	DeleteAccount(ctx context.Context, userID uuid.UUID, input *DeleteAccountInput) error

	// ExportWarranties renders all warranties of the user as CSV.
	ExportWarranties(ctx context.Context, userID uuid.UUID) (*ExportFile, error)
}
