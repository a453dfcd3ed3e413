package handler

import (
	"log/slog"
	"strconv"
	"time"

	"ewarrants/internal/delivery/api/response"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/errors"
	"ewarrants/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WarrantyHandlerParams holds dependencies for WarrantyHandler, injected by Fx.
type WarrantyHandlerParams struct {
	fx.In

	WarrantyUC usecase.WarrantyUsecase
	Logger     *slog.Logger
}

// WarrantyHandler serves the owner-scoped warranty CRUD endpoints.
type WarrantyHandler struct {
	warrantyUC usecase.WarrantyUsecase
	logger     *slog.Logger
}

// NewWarrantyHandler is the constructor for WarrantyHandler
func NewWarrantyHandler(params WarrantyHandlerParams) *WarrantyHandler {
	return &WarrantyHandler{
		warrantyUC: params.WarrantyUC,
		logger:     params.Logger,
	}
}

func (h *WarrantyHandler) CreateWarranty(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.WarrantyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	warranty, err := h.warrantyUC.CreateWarranty(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, warranty)
}

// ListWarranties supports incremental sync through lastPulledAt (epoch millis).
func (h *WarrantyHandler) ListWarranties(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var updatedAfter *time.Time
	if raw := c.QueryParam("lastPulledAt"); raw != "" {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || millis < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("lastPulledAt must be epoch milliseconds")
		}
		since := time.UnixMilli(millis).UTC()
		updatedAfter = &since
	}

	warranties, err := h.warrantyUC.ListWarranties(c.Request().Context(), userID, updatedAfter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, warranties)
}

func (h *WarrantyHandler) GetWarranty(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	warranty, err := h.warrantyUC.GetWarranty(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, warranty)
}

func (h *WarrantyHandler) UpdateWarranty(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req usecase.WarrantyInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	warranty, err := h.warrantyUC.UpdateWarranty(c.Request().Context(), userID, id, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, warranty)
}

func (h *WarrantyHandler) DeleteWarranty(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.warrantyUC.DeleteWarranty(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Warranty deleted successfully")
}
