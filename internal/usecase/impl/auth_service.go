// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ewarrants/config"
	deliverycontext "ewarrants/internal/delivery/context"
	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	codes             service.CodeGenerator
	mailer            service.MailService
	resetCodeTTL      time.Duration
	minPasswordLength int
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Codes        service.CodeGenerator
	Mailer       service.MailService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetCodeTTL := time.Hour
	minPasswordLength := 6
	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.ResetCodeTTL > 0 {
			resetCodeTTL = params.Config.Auth.ResetCodeTTL
		}
		if params.Config.Auth.MinPasswordLength > 0 {
			minPasswordLength = params.Config.Auth.MinPasswordLength
		}
	}

	return &authService{
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		codes:             params.Codes,
		mailer:            params.Mailer,
		resetCodeTTL:      resetCodeTTL,
		minPasswordLength: minPasswordLength,
		logger:            params.Logger,
		now:               time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account unverified, or refreshes a pending one, and mails a code.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	email := normalizeEmail(input.Email)
	if err := srv.checkPassword(input.Password); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			Email:              email,
			EmailNotifications: entity.DefaultEmailNotifications(),
		}
	case err != nil:
		return errors.Wrap(err, "failed to find user by email")
	case user.IsVerified:
		return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}
	code, err := srv.codes.NewCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	user.FullName = strings.TrimSpace(input.FullName)
	user.PasswordHash = hash
	user.VerificationCode = code
	user.IsVerified = false

	if user.ID == uuid.Nil {
		err = srv.userRepo.Create(ctx, user)
	} else {
		err = srv.userRepo.Update(ctx, user)
	}
	if err != nil {
		return errors.Wrap(err, "failed to save pending user")
	}

	if err := srv.mailer.SendVerificationCode(ctx, user.Email, user.FullName, code); err != nil {
		srv.log(ctx).Error("Failed to send verification email", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Registration pending verification", slog.Any("userID", user.ID))

	return nil
}

// VerifyEmail activates the account matching email and code.
func (srv *authService) VerifyEmail(ctx context.Context, input *usecase.VerifyEmailInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCode
		}

		return errors.Wrap(err, "failed to find user by email")
	}
	if user.VerificationCode == "" || user.VerificationCode != input.Code {
		return domainerrors.ErrInvalidCode
	}

	user.IsVerified = true
	user.VerificationCode = ""
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to verify user")
	}

	srv.log(ctx).Info("Email verified", slog.Any("userID", user.ID))

	return nil
}

// Login issues a token for a verified account with a matching password.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// ForgotPassword never reveals whether the email is registered.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email")

			return nil
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	code, err := srv.codes.NewCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}
	expires := srv.now().Add(srv.resetCodeTTL)
	user.ResetPasswordCode = code
	user.ResetPasswordExpires = &expires

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}

	if err := srv.mailer.SendPasswordResetCode(ctx, user.Email, user.FullName, code); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return nil
}

// ResetPassword consumes a valid reset code.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.checkPassword(input.NewPassword); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCode
		}

		return errors.Wrap(err, "failed to find user by email")
	}
	if !user.ResetCodeValid(input.Code, srv.now()) {
		return domainerrors.ErrInvalidCode
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user.PasswordHash = hash
	user.ResetPasswordCode = ""
	user.ResetPasswordExpires = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to reset password")
	}

	srv.log(ctx).Info("Password reset", slog.Any("userID", user.ID))

	return nil
}

// ChangePassword requires the current password.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if err := srv.checkPassword(input.NewPassword); err != nil {
		return err
	}

	user, err := findUser(ctx, srv.userRepo, userID)
	if err != nil {
		return err
	}
	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrIncorrectPassword.WrapMessage("current password is incorrect")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user.PasswordHash = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to change password")
	}

	return nil
}

func (srv *authService) checkPassword(password string) error {
	if len(password) < srv.minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("password must be at least %d characters", srv.minPasswordLength))
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// findUser maps the repository miss to the domain error.
func findUser(ctx context.Context, repo repository.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
