package usecase

import (
	"context"

	"ewarrants/internal/domain/entity"
	"ewarrants/internal/domain/service"

	"github.com/google/uuid"
)

// UploadInput is a file received from a client.
type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ChatInput is one user message with the preceding conversation.
type ChatInput struct {
	Message string             `json:"message" validate:"required"`
	History []service.ChatTurn `json:"history" validate:"dive"`
}

// ChatOutput pairs the model's answer with the records it was given.
type ChatOutput struct {
	Response string             `json:"response"`
	Data     []*entity.Warranty `json:"data"`
}

// ProcessedReceipt is a warranty draft built from a scanned receipt.
type ProcessedReceipt struct {
	ProductName    string           `json:"productName"`
	PurchaseDate   string           `json:"purchaseDate"`
	WarrantyMonths *int             `json:"warrantyMonths"`
	Category       string           `json:"category"`
	Receipts       []entity.Receipt `json:"receipts"`
}

// ProductImageInput names the product to look up.
type ProductImageInput struct {
	ProductName string `json:"productName" validate:"required"`
	Category    string `json:"category"`
}

// ProductImageOutput is nil-valued when no image was found.
type ProductImageOutput struct {
	ImageURL *string `json:"imageUrl"`
}

// AssistantUsecase groups the AI-assisted features.
type AssistantUsecase interface {
	// Chat answers a question about the user's warranties.
	Chat(ctx context.Context, ownerID uuid.UUID, input *ChatInput) (*ChatOutput, error)

	// ProcessReceipt stores the receipt image and extracts a warranty draft from it.
	ProcessReceipt(ctx context.Context, ownerID uuid.UUID, input *UploadInput) (*ProcessedReceipt, error)

	// FindProductImage looks up a product shot for the warranty card.
	FindProductImage(ctx context.Context, input *ProductImageInput) (*ProductImageOutput, error)
}

// AttachmentUsecase stores user uploads.
type AttachmentUsecase interface {
	Upload(ctx context.Context, ownerID uuid.UUID, input *UploadInput) (*entity.Receipt, error)
}
