package repository

import (
	"context"
	"time"

	"ewarrants/internal/domain/entity"
	"ewarrants/internal/errors"

	"github.com/google/uuid"
)

// ErrWarrantyNotFound is returned when a warranty does not exist or belongs
// to another owner. Callers cannot tell the two cases apart.
var ErrWarrantyNotFound = errors.New("warranty not found")

// ListOptions narrows ListByOwner.
type ListOptions struct {
	// UpdatedAfter keeps only warranties with updated_at strictly after it.
	UpdatedAfter *time.Time

	// Category is a case-insensitive substring filter.
	Category string

	// SortAscending orders by purchase date ascending instead of descending.
	SortAscending bool
}

// WarrantyRepository is the owner-scoped warranty store. Every method takes the
// owner as its first argument and never touches another owner's rows.
type WarrantyRepository interface {
	// Create assigns ID and timestamps and stores the warranty under ownerID.
	Create(ctx context.Context, ownerID uuid.UUID, warranty *entity.Warranty) error

	// FindByID returns ErrWarrantyNotFound for missing or foreign rows.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Warranty, error)

	// Update replaces the editable fields of an existing warranty.
	Update(ctx context.Context, ownerID uuid.UUID, warranty *entity.Warranty) error

	// Delete removes one warranty.
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// ListByOwner lists warranties, newest purchase first unless opts says otherwise.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, opts ListOptions) ([]*entity.Warranty, error)

	// FindExpiringWithin lists warranties whose expiry date lies in [from, to].
	FindExpiringWithin(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]*entity.Warranty, error)

	// FindExpiringOn lists warranties expiring on the given calendar day.
	FindExpiringOn(ctx context.Context, ownerID uuid.UUID, day time.Time) ([]*entity.Warranty, error)

	// DeleteAllForOwner removes every warranty of the owner. Used by account deletion only.
	DeleteAllForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}
