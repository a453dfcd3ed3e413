package impl

import (
	"context"
	"testing"
	"time"

	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	mockRepo "ewarrants/internal/mocks/repository"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type warrantyServiceFixtures struct {
	service      usecase.WarrantyUsecase
	warrantyRepo *mockRepo.MockWarrantyRepository
}

func createTestWarrantyService(t *testing.T) warrantyServiceFixtures {
	warrantyRepo := mockRepo.NewMockWarrantyRepository(t)

	return warrantyServiceFixtures{
		service: NewWarrantyService(WarrantyServiceParams{
			WarrantyRepo: warrantyRepo,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
		warrantyRepo: warrantyRepo,
	}
}

func TestWarrantyService_CreateWarranty(t *testing.T) {
	fx := createTestWarrantyService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.warrantyRepo.EXPECT().
		Create(ctx, ownerID, mock.AnythingOfType("*entity.Warranty")).
		Return(nil)

	warranty, err := fx.service.CreateWarranty(ctx, ownerID, &usecase.WarrantyInput{
		ProductName:          " Laptop ",
		PurchaseDate:         "2024-01-31",
		WarrantyLengthMonths: 1,
		Category:             "Electronics",
		Receipts:             []entity.Receipt{{Name: "bill.pdf", URL: "https://cdn/bill.pdf", FileType: "application/pdf"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Laptop", warranty.ProductName)
	assert.Equal(t, mustDate(t, "2024-01-31"), warranty.PurchaseDate)
	assert.Equal(t, mustDate(t, "2024-02-29"), warranty.ExpiryDate())
	assert.Len(t, warranty.Receipts, 1)
}

func TestWarrantyService_CreateWarranty_Invalid(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.WarrantyInput
	}{
		{name: "bad date", input: usecase.WarrantyInput{ProductName: "TV", PurchaseDate: "yesterday"}},
		{name: "blank name", input: usecase.WarrantyInput{ProductName: "  ", PurchaseDate: "2024-01-01"}},
		{name: "negative length", input: usecase.WarrantyInput{ProductName: "TV", PurchaseDate: "2024-01-01", WarrantyLengthMonths: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWarrantyService(t)

			_, err := fx.service.CreateWarranty(ctx, uuid.New(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestWarrantyService_GetWarranty_NotFound(t *testing.T) {
	fx := createTestWarrantyService(t)
	ctx := context.Background()
	ownerID, id := uuid.New(), uuid.New()

	fx.warrantyRepo.EXPECT().FindByID(ctx, ownerID, id).Return(nil, repository.ErrWarrantyNotFound)

	_, err := fx.service.GetWarranty(ctx, ownerID, id)
	assert.Equal(t, domainerrors.ErrWarrantyNotFound, err)
}

func TestWarrantyService_ListWarranties_PassesUpdatedAfter(t *testing.T) {
	fx := createTestWarrantyService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	since := time.UnixMilli(1717200000000)

	expected := []*entity.Warranty{{ID: uuid.New(), OwnerID: ownerID}}
	fx.warrantyRepo.EXPECT().
		ListByOwner(ctx, ownerID, repository.ListOptions{UpdatedAfter: &since}).
		Return(expected, nil)

	got, err := fx.service.ListWarranties(ctx, ownerID, &since)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestWarrantyService_UpdateWarranty_KeepsIdentity(t *testing.T) {
	fx := createTestWarrantyService(t)
	ctx := context.Background()
	ownerID, id := uuid.New(), uuid.New()
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.warrantyRepo.EXPECT().
		FindByID(ctx, ownerID, id).
		Return(&entity.Warranty{ID: id, OwnerID: ownerID, CreatedAt: created}, nil)
	fx.warrantyRepo.EXPECT().
		Update(ctx, ownerID, mock.AnythingOfType("*entity.Warranty")).
		Run(func(_ context.Context, _ uuid.UUID, w *entity.Warranty) {
			assert.Equal(t, id, w.ID)
			assert.Equal(t, created, w.CreatedAt)
			assert.Equal(t, 24, w.WarrantyLengthMonths)
		}).
		Return(nil)

	warranty, err := fx.service.UpdateWarranty(ctx, ownerID, id, &usecase.WarrantyInput{
		ProductName:          "Fridge",
		PurchaseDate:         "2024-03-15",
		WarrantyLengthMonths: 24,
	})
	require.NoError(t, err)
	assert.Equal(t, id, warranty.ID)
}

func TestWarrantyService_ForeignOwnerLooksMissing(t *testing.T) {
	fx := createTestWarrantyService(t)
	ctx := context.Background()
	stranger, id := uuid.New(), uuid.New()

	fx.warrantyRepo.EXPECT().FindByID(ctx, stranger, id).Return(nil, repository.ErrWarrantyNotFound)
	fx.warrantyRepo.EXPECT().Delete(ctx, stranger, id).Return(repository.ErrWarrantyNotFound)

	_, getErr := fx.service.UpdateWarranty(ctx, stranger, id, &usecase.WarrantyInput{ProductName: "TV", PurchaseDate: "2024-01-01"})
	deleteErr := fx.service.DeleteWarranty(ctx, stranger, id)

	assert.Equal(t, domainerrors.ErrWarrantyNotFound, getErr)
	assert.Equal(t, domainerrors.ErrWarrantyNotFound, deleteErr)
}

func TestWarrantyService_DeleteWarranty_StoreError(t *testing.T) {
	fx := createTestWarrantyService(t)
	ctx := context.Background()
	ownerID, id := uuid.New(), uuid.New()

	fx.warrantyRepo.EXPECT().Delete(ctx, ownerID, id).Return(errors.New("connection reset"))

	err := fx.service.DeleteWarranty(ctx, ownerID, id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete warranty")
}
