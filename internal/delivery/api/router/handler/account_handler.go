package handler

import (
	"log/slog"

	"ewarrants/internal/delivery/api/response"
	"ewarrants/internal/errors"
	"ewarrants/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves profile, preferences, export and deletion.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, user)
}

func (h *AccountHandler) UpdateNotificationPrefs(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.NotificationPrefsInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	prefs, err := h.accountUC.UpdateNotificationPrefs(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, prefs)
}

// DeleteAccount requires the password in the request body.
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.DeleteAccountInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.accountUC.DeleteAccount(c.Request().Context(), userID, &req); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Account deleted successfully")
}

func (h *AccountHandler) ExportWarranties(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	file, err := h.accountUC.ExportWarranties(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Attachment(c, file.FileName, file.ContentType, file.Content)
}
