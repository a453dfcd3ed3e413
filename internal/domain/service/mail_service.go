package service

import (
	"context"

	"ewarrants/internal/domain/entity"
)

// MailService delivers the transactional emails of the product.
type MailService interface {
	// SendVerificationCode mails the sign-up confirmation code.
	SendVerificationCode(ctx context.Context, to, fullName, code string) error

	// SendPasswordResetCode mails the password reset code.
	SendPasswordResetCode(ctx context.Context, to, fullName, code string) error

	// SendExpiryReminder mails one reminder listing every warranty expiring in days.
	SendExpiryReminder(ctx context.Context, to, fullName string, days int, warranties []*entity.Warranty) error
}
