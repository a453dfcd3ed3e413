package service

import (
	"context"

	"ewarrants/internal/domain/entity"
)

// ReceiptDetails is what the receipt reader could extract from an image.
// Fields the model could not determine are left empty or nil.
type ReceiptDetails struct {
	ProductName    string `json:"productName"`
	PurchaseDate   string `json:"purchaseDate"` // YYYY-MM-DD
	WarrantyMonths *int   `json:"warrantyMonths"`
	Category       string `json:"category"`
}

// ReceiptReader extracts warranty details from a receipt image.
type ReceiptReader interface {
	ReadReceipt(ctx context.Context, image []byte, mimeType string) (*ReceiptDetails, error)
}

// WarrantyQuery carries the arguments of the getWarranties capability.
// A nil ExpiringWithinDays and empty SortBy mean the argument was absent.
type WarrantyQuery struct {
	Category           string
	ExpiringWithinDays *int
	SortBy             string
}

// WarrantyQueryFunc answers a getWarranties call for the current user.
type WarrantyQueryFunc func(ctx context.Context, query WarrantyQuery) ([]*entity.Warranty, error)

// ChatTurn is one prior message of a conversation.
type ChatTurn struct {
	Role string `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text"`
}

// ChatModel runs one conversational turn. When the model asks for warranty
// data it calls query and feeds the result back before producing its answer.
type ChatModel interface {
	Chat(ctx context.Context, history []ChatTurn, message string, query WarrantyQueryFunc) (string, error)
}

// ImageSearch finds a representative product image.
type ImageSearch interface {
	// FindImage returns an empty string when nothing matched.
	FindImage(ctx context.Context, query string) (string, error)
}
