package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/constants"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/expiry"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const scannedReceiptName = "Scanned Receipt"

// assistantService implements the AssistantUsecase interface.
type assistantService struct {
	warrantyRepo repository.WarrantyRepository
	attachments  usecase.AttachmentUsecase
	reader       service.ReceiptReader
	chat         service.ChatModel
	images       service.ImageSearch
	loc          *time.Location
	logger       *slog.Logger
	now          func() time.Time
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	WarrantyRepo repository.WarrantyRepository
	Attachments  usecase.AttachmentUsecase
	Reader       service.ReceiptReader
	Chat         service.ChatModel
	Images       service.ImageSearch
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		warrantyRepo: params.WarrantyRepo,
		attachments:  params.Attachments,
		reader:       params.Reader,
		chat:         params.Chat,
		images:       params.Images,
		loc:          referenceLocation(params.Config),
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Chat runs one conversational turn with getWarranties bound to ownerID.
func (srv *assistantService) Chat(ctx context.Context, ownerID uuid.UUID, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	bridge := newWarrantyQueryBridge(srv.warrantyRepo, ownerID, expiry.Date(srv.now(), srv.loc))

	text, err := srv.chat.Chat(ctx, input.History, message, bridge.GetWarranties)
	if err != nil {
		srv.log(ctx).Error("Chat failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to run chat")
	}

	data := bridge.Data()
	srv.log(ctx).Debug("Chat answered", slog.Int("records", len(data)))

	return &usecase.ChatOutput{Response: text, Data: data}, nil
}

// ProcessReceipt uploads the image first so the draft always references it.
func (srv *assistantService) ProcessReceipt(ctx context.Context, ownerID uuid.UUID, input *usecase.UploadInput) (*usecase.ProcessedReceipt, error) {
	receipt, err := srv.attachments.Upload(ctx, ownerID, input)
	if err != nil {
		return nil, err
	}

	details, err := srv.reader.ReadReceipt(ctx, input.Data, receipt.FileType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to process receipt")
	}

	return &usecase.ProcessedReceipt{
		ProductName:    details.ProductName,
		PurchaseDate:   details.PurchaseDate,
		WarrantyMonths: details.WarrantyMonths,
		Category:       normalizeCategory(details.Category),
		Receipts: []entity.Receipt{{
			Name:     scannedReceiptName,
			URL:      receipt.URL,
			FileType: receipt.FileType,
		}},
	}, nil
}

func (srv *assistantService) FindProductImage(ctx context.Context, input *usecase.ProductImageInput) (*usecase.ProductImageOutput, error) {
	name := strings.TrimSpace(input.ProductName)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("productName is required")
	}

	link, err := srv.images.FindImage(ctx, name+" "+strings.TrimSpace(input.Category)+" product shot official")
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product image")
	}
	if link == "" {
		return &usecase.ProductImageOutput{}, nil
	}

	return &usecase.ProductImageOutput{ImageURL: &link}, nil
}

// normalizeCategory maps a model answer onto the known list.
func normalizeCategory(category string) string {
	for _, known := range constants.Categories {
		if strings.EqualFold(strings.TrimSpace(category), known) {
			return known
		}
	}

	return constants.FallbackCategory
}
