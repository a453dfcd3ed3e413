// Package repository holds the persistence contracts used by the usecases.
// Implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"ewarrants/internal/domain/entity"
	"ewarrants/internal/errors"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts. Emails are unique case-insensitively.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail matches case-insensitively, verified or not.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create assigns the id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// Update saves every column, including codes and notification prefs.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row only. Owned warranties must be removed first
	// with WarrantyRepository.DeleteAllForOwner.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindNotificationSubscribers lists users with reminder emails enabled.
	FindNotificationSubscribers(ctx context.Context) ([]*entity.User, error)
}
