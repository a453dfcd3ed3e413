package impl

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	mockRepo "ewarrants/internal/mocks/repository"
	mockSvc "ewarrants/internal/mocks/service"
	"ewarrants/internal/usecase"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	repoFactory  *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	warrantyRepo *mockRepo.MockWarrantyRepository
	hasher       *mockSvc.MockPasswordHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repoFactory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	warrantyRepo := mockRepo.NewMockWarrantyRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			TxManager:    txManager,
			UserRepo:     userRepo,
			WarrantyRepo: warrantyRepo,
			Hasher:       hasher,
			Config:       newTestConfig(),
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		repoFactory:  repoFactory,
		userRepo:     userRepo,
		warrantyRepo: warrantyRepo,
		hasher:       hasher,
	}
}

func TestAccountService_UpdateNotificationPrefs(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, EmailNotifications: entity.DefaultEmailNotifications()}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	enabled, days := true, 7
	prefs, err := fx.service.UpdateNotificationPrefs(ctx, userID, &usecase.NotificationPrefsInput{Enabled: &enabled, ReminderDays: &days})
	require.NoError(t, err)
	assert.Equal(t, entity.EmailNotifications{Enabled: true, ReminderDays: 7}, *prefs)
}

func TestAccountService_UpdateNotificationPrefs_Invalid(t *testing.T) {
	fx := createTestAccountService(t)
	enabled, days := true, -1

	_, err := fx.service.UpdateNotificationPrefs(context.Background(), uuid.New(), &usecase.NotificationPrefsInput{Enabled: &enabled, ReminderDays: &days})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.UpdateNotificationPrefs(context.Background(), uuid.New(), &usecase.NotificationPrefsInput{ReminderDays: &days})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAccountService_DeleteAccount_RemovesWarrantiesThenUser(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "hashed"}, nil).Once()
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txWarrantyRepo := mockRepo.NewMockWarrantyRepository(t)
	fx.repoFactory.EXPECT().WarrantyRepo().Return(txWarrantyRepo)
	fx.repoFactory.EXPECT().UserRepo().Return(txUserRepo)

	var order []string
	txWarrantyRepo.EXPECT().DeleteAllForOwner(ctx, userID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "warranties") }).
		Return(3, nil)
	txUserRepo.EXPECT().Delete(ctx, userID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "user") }).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})

	require.NoError(t, fx.service.DeleteAccount(ctx, userID, &usecase.DeleteAccountInput{Password: "secret1"}))
	assert.Equal(t, []string{"warranties", "user"}, order)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound).Once()
	_, err := fx.service.GetProfile(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAccountService_DeleteAccount_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

	err := fx.service.DeleteAccount(ctx, userID, &usecase.DeleteAccountInput{Password: "nope"})
	assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_DeleteAccount_TransactionFails(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)

	txWarrantyRepo := mockRepo.NewMockWarrantyRepository(t)
	fx.repoFactory.EXPECT().WarrantyRepo().Return(txWarrantyRepo)
	txWarrantyRepo.EXPECT().DeleteAllForOwner(ctx, userID).Return(0, errors.New("deadlock detected"))

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})

	err := fx.service.DeleteAccount(ctx, userID, &usecase.DeleteAccountInput{Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestAccountService_ExportWarranties(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.warrantyRepo.EXPECT().ListByOwner(ctx, userID, repository.ListOptions{}).Return([]*entity.Warranty{
		{
			ProductName:          "Laptop",
			Category:             "Electronics",
			PurchaseDate:         mustDate(t, "2024-01-31"),
			WarrantyLengthMonths: 1,
			Description:          "Work laptop, 16\"",
			Receipts: []entity.Receipt{
				{URL: "https://cdn/a.pdf"},
				{URL: "https://cdn/b.jpg"},
			},
		},
		{
			ProductName:          "Kettle",
			PurchaseDate:         mustDate(t, "2023-11-05"),
			WarrantyLengthMonths: 0,
		},
	}, nil)

	file, err := fx.service.ExportWarranties(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "eWarrants_Export.csv", file.FileName)
	assert.Equal(t, "text/csv", file.ContentType)

	rows, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"Product Name", "Category", "Purchase Date", "Warranty Length (Months)", "Expiry Date", "Description", "Receipt URLs"},
		{"Laptop", "Electronics", "1/31/2024", "1", "2/29/2024", "Work laptop, 16\"", "https://cdn/a.pdf, https://cdn/b.jpg"},
		{"Kettle", "N/A", "11/5/2023", "0", "11/5/2023", "", ""},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("export rows mismatch (-want +got):\n%s", diff)
	}
}

func TestAccountService_ExportWarranties_Empty(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.warrantyRepo.EXPECT().ListByOwner(ctx, userID, repository.ListOptions{}).Return([]*entity.Warranty{}, nil)

	_, err := fx.service.ExportWarranties(ctx, userID)
	assert.Equal(t, domainerrors.ErrNoWarrantiesToExport, err)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}
