package usecase

import (
	"context"
	"time"

	"ewarrants/internal/domain/entity"

	"github.com/google/uuid"
)

// WarrantyInput carries the editable fields of a warranty.
// PurchaseDate accepts YYYY-MM-DD or an RFC 3339 timestamp.
type WarrantyInput struct {
	ProductName          string           `json:"productName" validate:"required"`
	PurchaseDate         string           `json:"purchaseDate" validate:"required"`
	WarrantyLengthMonths int              `json:"warrantyLengthMonths" validate:"min=0"`
	Category             string           `json:"category"`
	Description          string           `json:"description"`
	Receipts             []entity.Receipt `json:"receipts" validate:"dive"`
	ProductImageURL      string           `json:"productImageUrl"`
}

// WarrantyUsecase defines owner-scoped warranty management.
type WarrantyUsecase interface {
	CreateWarranty(ctx context.Context, ownerID uuid.UUID, input *WarrantyInput) (*entity.Warranty, error)

	GetWarranty(ctx context.Context, ownerID, id uuid.UUID) (*entity.Warranty, error)

	// ListWarranties returns all warranties, or only those changed after updatedAfter.
	ListWarranties(ctx context.Context, ownerID uuid.UUID, updatedAfter *time.Time) ([]*entity.Warranty, error)

	UpdateWarranty(ctx context.Context, ownerID, id uuid.UUID, input *WarrantyInput) (*entity.Warranty, error)

	DeleteWarranty(ctx context.Context, ownerID, id uuid.UUID) error
}
