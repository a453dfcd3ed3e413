package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWarranty_Validate(t *testing.T) {
	valid := &Warranty{
		ProductName:          "Laptop",
		PurchaseDate:         time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		WarrantyLengthMonths: 12,
	}
	assert.Empty(t, valid.Validate())

	invalid := &Warranty{ProductName: "  ", WarrantyLengthMonths: -1}
	assert.ElementsMatch(t, []string{
		"productName is required",
		"purchaseDate is required",
		"warrantyLengthMonths must not be negative",
	}, invalid.Validate())
}

func TestWarranty_ExpiryDateIsDerived(t *testing.T) {
	w := &Warranty{PurchaseDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), WarrantyLengthMonths: 1}
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), w.ExpiryDate())

	w.WarrantyLengthMonths = 2
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), w.ExpiryDate())
}

func TestUser_ResetCodeValid(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	expires := now.Add(time.Hour)
	u := &User{ResetPasswordCode: "123456", ResetPasswordExpires: &expires}

	assert.True(t, u.ResetCodeValid("123456", now))
	assert.False(t, u.ResetCodeValid("654321", now))
	assert.False(t, u.ResetCodeValid("123456", now.Add(2*time.Hour)))
	assert.False(t, (&User{}).ResetCodeValid("", now))
}
