package impl

import (
	"context"
	"testing"
	"time"

	"ewarrants/internal/domain/constants"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/domain/service"
	mockRepo "ewarrants/internal/mocks/repository"
	mockSvc "ewarrants/internal/mocks/service"
	mockUsecase "ewarrants/internal/mocks/usecase"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type assistantServiceFixtures struct {
	service      usecase.AssistantUsecase
	warrantyRepo *mockRepo.MockWarrantyRepository
	attachments  *mockUsecase.MockAttachmentUsecase
	reader       *mockSvc.MockReceiptReader
	chat         *mockSvc.MockChatModel
	images       *mockSvc.MockImageSearch
}

func createTestAssistantService(t *testing.T) assistantServiceFixtures {
	warrantyRepo := mockRepo.NewMockWarrantyRepository(t)
	attachments := mockUsecase.NewMockAttachmentUsecase(t)
	reader := mockSvc.NewMockReceiptReader(t)
	chat := mockSvc.NewMockChatModel(t)
	images := mockSvc.NewMockImageSearch(t)

	svc := NewAssistantService(AssistantServiceParams{
		WarrantyRepo: warrantyRepo,
		Attachments:  attachments,
		Reader:       reader,
		Chat:         chat,
		Images:       images,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*assistantService).now = func() time.Time { return fixedNow }

	return assistantServiceFixtures{
		service:      svc,
		warrantyRepo: warrantyRepo,
		attachments:  attachments,
		reader:       reader,
		chat:         chat,
		images:       images,
	}
}

// answerWith scripts a model that issues one getWarranties call.
func answerWith(t *testing.T, query service.WarrantyQuery, text string) func(context.Context, []service.ChatTurn, string, service.WarrantyQueryFunc) (string, error) {
	return func(ctx context.Context, _ []service.ChatTurn, _ string, fn service.WarrantyQueryFunc) (string, error) {
		_, err := fn(ctx, query)
		require.NoError(t, err)

		return text, nil
	}
}

func TestAssistantService_Chat_NoToolCall(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	fx.chat.EXPECT().Chat(ctx, []service.ChatTurn(nil), "hello", mock.Anything).Return("Hi! Ask me about your warranties.", nil)

	out, err := fx.service.Chat(ctx, uuid.New(), &usecase.ChatInput{Message: " hello "})
	require.NoError(t, err)
	assert.Equal(t, "Hi! Ask me about your warranties.", out.Response)
	assert.NotNil(t, out.Data)
	assert.Empty(t, out.Data)
}

func TestAssistantService_Chat_SortedNarrowsToFirstRecord(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	records := []*entity.Warranty{
		{ID: uuid.New(), ProductName: "Oldest", PurchaseDate: mustDate(t, "2021-01-01")},
		{ID: uuid.New(), ProductName: "Middle", PurchaseDate: mustDate(t, "2022-01-01")},
		{ID: uuid.New(), ProductName: "Newest", PurchaseDate: mustDate(t, "2023-01-01")},
	}
	fx.warrantyRepo.EXPECT().
		ListByOwner(ctx, ownerID, repository.ListOptions{SortAscending: true}).
		Return(records, nil)
	fx.chat.EXPECT().
		Chat(ctx, mock.Anything, "what did I buy first?", mock.Anything).
		RunAndReturn(answerWith(t, service.WarrantyQuery{SortBy: constants.SortPurchaseDateAsc}, "Your oldest purchase is Oldest."))

	out, err := fx.service.Chat(ctx, ownerID, &usecase.ChatInput{Message: "what did I buy first?"})
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Oldest", out.Data[0].ProductName)
}

func TestAssistantService_Chat_CategoryReturnsAll(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	records := []*entity.Warranty{{ID: uuid.New()}, {ID: uuid.New()}}
	fx.warrantyRepo.EXPECT().
		ListByOwner(ctx, ownerID, repository.ListOptions{Category: "electronics"}).
		Return(records, nil)
	fx.chat.EXPECT().
		Chat(ctx, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(answerWith(t, service.WarrantyQuery{Category: "electronics"}, "You have two."))

	out, err := fx.service.Chat(ctx, ownerID, &usecase.ChatInput{Message: "my electronics?"})
	require.NoError(t, err)
	assert.Equal(t, records, out.Data)
}

func TestAssistantService_Chat_ExpiringWindowFromToday(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	days := 30

	fx.warrantyRepo.EXPECT().
		FindExpiringWithin(ctx, ownerID, mustDate(t, "2024-06-01"), mustDate(t, "2024-07-01")).
		Return([]*entity.Warranty{}, nil)
	fx.chat.EXPECT().
		Chat(ctx, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(answerWith(t, service.WarrantyQuery{ExpiringWithinDays: &days, SortBy: constants.SortPurchaseDateDesc}, "Nothing expires soon."))

	out, err := fx.service.Chat(ctx, ownerID, &usecase.ChatInput{Message: "anything expiring?"})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
}

func TestAssistantService_Chat_NegativeWindowStaysOnExpiryQuery(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	days := -5

	fx.warrantyRepo.EXPECT().
		FindExpiringWithin(ctx, ownerID, mustDate(t, "2024-06-01"), mustDate(t, "2024-05-27")).
		Return([]*entity.Warranty{}, nil)
	fx.chat.EXPECT().
		Chat(ctx, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(answerWith(t, service.WarrantyQuery{ExpiringWithinDays: &days, Category: "Electronics"}, "Nothing."))

	out, err := fx.service.Chat(ctx, ownerID, &usecase.ChatInput{Message: "expired last week?"})
	require.NoError(t, err)
	assert.Empty(t, out.Data)
}

func TestAssistantService_Chat_ModelFailure(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()

	upstream := domainerrors.NewUpstreamError("gemini", errors.New("quota exceeded"))
	fx.chat.EXPECT().Chat(ctx, mock.Anything, mock.Anything, mock.Anything).Return("", upstream)

	_, err := fx.service.Chat(ctx, uuid.New(), &usecase.ChatInput{Message: "hi"})
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestAssistantService_Chat_EmptyMessage(t *testing.T) {
	fx := createTestAssistantService(t)

	_, err := fx.service.Chat(context.Background(), uuid.New(), &usecase.ChatInput{Message: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssistantService_ProcessReceipt(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.UploadInput{FileName: "receipt.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")}
	months := 12

	fx.attachments.EXPECT().Upload(ctx, ownerID, input).
		Return(&entity.Receipt{Name: "receipt.jpg", URL: "https://cdn/receipt.jpg", FileType: "image/jpeg"}, nil)
	fx.reader.EXPECT().ReadReceipt(ctx, input.Data, "image/jpeg").
		Return(&service.ReceiptDetails{
			ProductName:    "Blender",
			PurchaseDate:   "2024-05-20",
			WarrantyMonths: &months,
			Category:       "appliances",
		}, nil)

	draft, err := fx.service.ProcessReceipt(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, "Blender", draft.ProductName)
	assert.Equal(t, "2024-05-20", draft.PurchaseDate)
	assert.Equal(t, &months, draft.WarrantyMonths)
	assert.Equal(t, "Appliances", draft.Category)
	assert.Equal(t, []entity.Receipt{{Name: "Scanned Receipt", URL: "https://cdn/receipt.jpg", FileType: "image/jpeg"}}, draft.Receipts)
}

func TestAssistantService_ProcessReceipt_UnknownCategory(t *testing.T) {
	fx := createTestAssistantService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.UploadInput{FileName: "r.png", Data: []byte("png")}

	fx.attachments.EXPECT().Upload(ctx, ownerID, input).Return(&entity.Receipt{URL: "u", FileType: "image/png"}, nil)
	fx.reader.EXPECT().ReadReceipt(ctx, input.Data, "image/png").Return(&service.ReceiptDetails{Category: "Groceries"}, nil)

	draft, err := fx.service.ProcessReceipt(ctx, ownerID, input)
	require.NoError(t, err)
	assert.Equal(t, constants.FallbackCategory, draft.Category)
}

func TestAssistantService_FindProductImage(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		fx := createTestAssistantService(t)
		fx.images.EXPECT().FindImage(ctx, "Pixel 8 Electronics product shot official").Return("https://img/pixel.png", nil)

		out, err := fx.service.FindProductImage(ctx, &usecase.ProductImageInput{ProductName: "Pixel 8", Category: "Electronics"})
		require.NoError(t, err)
		require.NotNil(t, out.ImageURL)
		assert.Equal(t, "https://img/pixel.png", *out.ImageURL)
	})

	t.Run("nothing matched", func(t *testing.T) {
		fx := createTestAssistantService(t)
		fx.images.EXPECT().FindImage(ctx, mock.Anything).Return("", nil)

		out, err := fx.service.FindProductImage(ctx, &usecase.ProductImageInput{ProductName: "Obscure Gadget"})
		require.NoError(t, err)
		assert.Nil(t, out.ImageURL)
	})
}
