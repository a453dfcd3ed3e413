package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WarrantyModel mirrors the 'warranties' table. The expiry date is never
// stored; queries derive it from purchase_date and warranty_length_months.
type WarrantyModel struct {
	ID                   uuid.UUID                        `gorm:"type:uuid;primaryKey"`
	OwnerID              uuid.UUID                        `gorm:"type:uuid;not null;index"`
	ProductName          string                           `gorm:"type:varchar(255);not null"`
	PurchaseDate         datatypes.Date                   `gorm:"not null"`
	WarrantyLengthMonths int                              `gorm:"not null"`
	Category             string                           `gorm:"type:varchar(100)"`
	Description          string                           `gorm:"type:text"`
	Receipts             datatypes.JSONSlice[ReceiptItem] `gorm:"type:jsonb;not null"`
	ProductImageURL      string                           `gorm:"type:text"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ReceiptItem is one element of the receipts jsonb array.
type ReceiptItem struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	FileType string `json:"fileType"`
}

// TableName explicitly sets the table name for GORM.
func (WarrantyModel) TableName() string {
	return "warranties"
}
