package handler

import (
	"log/slog"

	"ewarrants/internal/delivery/api/response"
	"ewarrants/internal/errors"
	"ewarrants/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	uploadField  = "file"
	receiptField = "receipt"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC  usecase.AssistantUsecase
	AttachmentUC usecase.AttachmentUsecase
	Logger       *slog.Logger
}

// AssistantHandler serves uploads and the AI-assisted endpoints.
type AssistantHandler struct {
	assistantUC  usecase.AssistantUsecase
	attachmentUC usecase.AttachmentUsecase
	logger       *slog.Logger
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{
		assistantUC:  params.AssistantUC,
		attachmentUC: params.AttachmentUC,
		logger:       params.Logger,
	}
}

// Upload stores a multipart "file" and returns its receipt reference.
func (h *AssistantHandler) Upload(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	input, err := readUpload(c, uploadField)
	if err != nil {
		return err
	}

	receipt, err := h.attachmentUC.Upload(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, receipt)
}

// ProcessReceipt reads a multipart "receipt" image into a warranty draft.
func (h *AssistantHandler) ProcessReceipt(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}
	input, err := readUpload(c, receiptField)
	if err != nil {
		return err
	}

	draft, err := h.assistantUC.ProcessReceipt(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, draft)
}

func (h *AssistantHandler) FindProductImage(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req usecase.ProductImageInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.assistantUC.FindProductImage(c.Request().Context(), &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, out)
}

func (h *AssistantHandler) Chat(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.ChatInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.assistantUC.Chat(c.Request().Context(), userID, &req)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, out)
}
