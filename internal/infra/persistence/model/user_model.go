package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Column defaults live in the migrations;
// the application always writes every column explicitly.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName             string    `gorm:"type:varchar(200);not null"`
	Email                string    `gorm:"type:varchar(255);not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	IsVerified           bool      `gorm:"not null"`
	VerificationCode     *string   `gorm:"type:varchar(12)"`
	ResetPasswordCode    *string   `gorm:"type:varchar(12)"`
	ResetPasswordExpires *time.Time
	NotificationsEnabled bool `gorm:"not null"`
	ReminderDays         int  `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
