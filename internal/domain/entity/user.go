// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultReminderDays is the lead time used when a user never set one.
const DefaultReminderDays = 30

// User is an account holder. Only verified users may log in; an unverified
// row is a pending registration that can be overwritten by a new sign-up.
type User struct {
	ID                   uuid.UUID          `json:"id"`
	FullName             string             `json:"fullName"`
	Email                string             `json:"email"`
	PasswordHash         string             `json:"-"`
	IsVerified           bool               `json:"isVerified"`
	VerificationCode     string             `json:"-"`
	ResetPasswordCode    string             `json:"-"`
	ResetPasswordExpires *time.Time         `json:"-"`
	EmailNotifications   EmailNotifications `json:"emailNotifications"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// EmailNotifications holds the reminder preferences of a user.
type EmailNotifications struct {
	Enabled      bool `json:"enabled"`
	ReminderDays int  `json:"reminderDays"` // lead time in days, >= 0
}

// DefaultEmailNotifications returns the preferences of a fresh account.
func DefaultEmailNotifications() EmailNotifications {
	return EmailNotifications{Enabled: false, ReminderDays: DefaultReminderDays}
}

// ResetCodeValid reports whether code matches an unexpired reset request.
func (u *User) ResetCodeValid(code string, now time.Time) bool {
	if u.ResetPasswordCode == "" || u.ResetPasswordExpires == nil {
		return false
	}

	return u.ResetPasswordCode == code && now.Before(*u.ResetPasswordExpires)
}
