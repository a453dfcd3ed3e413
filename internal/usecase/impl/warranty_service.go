package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// warrantyService implements the WarrantyUsecase interface.
type warrantyService struct {
	warrantyRepo repository.WarrantyRepository
	loc          *time.Location
	logger       *slog.Logger
}

// WarrantyServiceParams holds dependencies for WarrantyService, injected by Fx.
type WarrantyServiceParams struct {
	fx.In

	WarrantyRepo repository.WarrantyRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewWarrantyService is the constructor for warrantyService.
func NewWarrantyService(params WarrantyServiceParams) usecase.WarrantyUsecase {
	return &warrantyService{
		warrantyRepo: params.WarrantyRepo,
		loc:          referenceLocation(params.Config),
		logger:       params.Logger,
	}
}

func (srv *warrantyService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *warrantyService) CreateWarranty(ctx context.Context, ownerID uuid.UUID, input *usecase.WarrantyInput) (*entity.Warranty, error) {
	warranty, err := srv.buildWarranty(input)
	if err != nil {
		return nil, err
	}

	if err := srv.warrantyRepo.Create(ctx, ownerID, warranty); err != nil {
		return nil, errors.Wrap(err, "failed to create warranty")
	}

	srv.log(ctx).Info("Warranty created",
		slog.Any("warrantyID", warranty.ID),
		slog.Time("expiryDate", warranty.ExpiryDate()),
	)

	return warranty, nil
}

func (srv *warrantyService) GetWarranty(ctx context.Context, ownerID, id uuid.UUID) (*entity.Warranty, error) {
	warranty, err := srv.warrantyRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapWarrantyError(err, "failed to find warranty")
	}

	return warranty, nil
}

func (srv *warrantyService) ListWarranties(ctx context.Context, ownerID uuid.UUID, updatedAfter *time.Time) ([]*entity.Warranty, error) {
	warranties, err := srv.warrantyRepo.ListByOwner(ctx, ownerID, repository.ListOptions{UpdatedAfter: updatedAfter})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list warranties")
	}

	return warranties, nil
}

// UpdateWarranty replaces every editable field; id and owner never change.
func (srv *warrantyService) UpdateWarranty(ctx context.Context, ownerID, id uuid.UUID, input *usecase.WarrantyInput) (*entity.Warranty, error) {
	existing, err := srv.warrantyRepo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, mapWarrantyError(err, "failed to find warranty")
	}

	warranty, err := srv.buildWarranty(input)
	if err != nil {
		return nil, err
	}
	warranty.ID = existing.ID
	warranty.CreatedAt = existing.CreatedAt

	if err := srv.warrantyRepo.Update(ctx, ownerID, warranty); err != nil {
		return nil, mapWarrantyError(err, "failed to update warranty")
	}

	return warranty, nil
}

func (srv *warrantyService) DeleteWarranty(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := srv.warrantyRepo.Delete(ctx, ownerID, id); err != nil {
		return mapWarrantyError(err, "failed to delete warranty")
	}

	srv.log(ctx).Info("Warranty deleted", slog.Any("warrantyID", id))

	return nil
}

func (srv *warrantyService) buildWarranty(input *usecase.WarrantyInput) (*entity.Warranty, error) {
	purchaseDate, err := parseCalendarDate(input.PurchaseDate, srv.loc)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	receipts := make([]entity.Receipt, 0, len(input.Receipts))
	receipts = append(receipts, input.Receipts...)

	warranty := &entity.Warranty{
		ProductName:          strings.TrimSpace(input.ProductName),
		PurchaseDate:         purchaseDate,
		WarrantyLengthMonths: input.WarrantyLengthMonths,
		Category:             strings.TrimSpace(input.Category),
		Description:          input.Description,
		Receipts:             receipts,
		ProductImageURL:      input.ProductImageURL,
	}
	if problems := warranty.Validate(); len(problems) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return warranty, nil
}

func mapWarrantyError(err error, message string) error {
	if errors.Is(err, repository.ErrWarrantyNotFound) {
		return domainerrors.ErrWarrantyNotFound
	}

	return errors.Wrap(err, message)
}
