package entity

import (
	"strings"
	"time"

	"ewarrants/internal/domain/expiry"

	"github.com/google/uuid"
)

// Warranty is a product warranty owned by exactly one user.
// ID and OwnerID never change after creation.
type Warranty struct {
	ID                   uuid.UUID `json:"id"`
	OwnerID              uuid.UUID `json:"ownerId"`
	ProductName          string    `json:"productName"`
	PurchaseDate         time.Time `json:"purchaseDate"` // calendar date, midnight UTC
	WarrantyLengthMonths int       `json:"warrantyLengthMonths"`
	Category             string    `json:"category,omitempty"`
	Description          string    `json:"description,omitempty"`
	Receipts             []Receipt `json:"receipts"`
	ProductImageURL      string    `json:"productImageUrl,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Receipt is an attachment reference stored alongside a warranty.
type Receipt struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	FileType string `json:"fileType"`
}

// ExpiryDate is derived on every call and never stored.
func (w *Warranty) ExpiryDate() time.Time {
	return expiry.ExpiryDate(w.PurchaseDate, w.WarrantyLengthMonths)
}

// Validate checks the fields every stored warranty must carry.
func (w *Warranty) Validate() []string {
	var problems []string
	if strings.TrimSpace(w.ProductName) == "" {
		problems = append(problems, "productName is required")
	}
	if w.PurchaseDate.IsZero() {
		problems = append(problems, "purchaseDate is required")
	}
	if w.WarrantyLengthMonths < 0 {
		problems = append(problems, "warrantyLengthMonths must not be negative")
	}

	return problems
}

// ReceiptURLs lists the attachment URLs in stored order.
func (w *Warranty) ReceiptURLs() []string {
	urls := make([]string, 0, len(w.Receipts))
	for _, r := range w.Receipts {
		urls = append(urls, r.URL)
	}

	return urls
}
