// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ewarrants/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to start a registration.
type RegisterInput struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyEmailInput confirms a pending registration.
type VerifyEmailInput struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput requests a reset code.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput sets a new password using a reset code.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// ChangePasswordInput replaces the password of a logged-in user.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// --- Output DTOs ---

// LoginOutput returns the access token after a successful login.
type LoginOutput struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// AuthUsecase covers registration, login and password management.
type AuthUsecase interface {
	// Register creates or refreshes a pending account and mails a verification code.
	Register(ctx context.Context, input *RegisterInput) error

	// VerifyEmail activates a pending account.
	VerifyEmail(ctx context.Context, input *VerifyEmailInput) error

	// Login issues an access token for a verified account.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ForgotPassword stores and mails a reset code. Unknown emails are not reported.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword sets a new password when the reset code is valid.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	// ChangePassword replaces the password after checking the current one.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}
