package handler

import (
	"log/slog"

	"ewarrants/internal/delivery/api/response"
	"ewarrants/internal/errors"
	"ewarrants/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves registration, login and password endpoints.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Register starts a registration and mails the verification code.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.Register(c.Request().Context(), &req); err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, response.MessageData{
		Message: "Verification code sent to your email",
	})
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req usecase.VerifyEmailInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.VerifyEmail(c.Request().Context(), &req); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Email verified successfully")
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, output)
}

// ForgotPassword answers the same way whether or not the email is known.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req usecase.ForgotPasswordInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), &req); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "If an account exists for this email, a reset code has been sent")
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req usecase.ResetPasswordInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ResetPassword(c.Request().Context(), &req); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password has been reset")
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.ChangePasswordInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.authUC.ChangePassword(c.Request().Context(), userID, &req); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Password changed successfully")
}
