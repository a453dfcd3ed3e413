// Package response writes the JSON envelope shared by every endpoint:
// {"data": ..., "meta": {"request_id": ...}} on success and
// {"error": {...}, "meta": {...}} on failure.
package response

import (
	"mime"
	"net/http"

	deliverycontext "ewarrants/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// MessageData is the payload of operations that only acknowledge.
type MessageData struct {
	Message string `json:"message"`
}

func OK(c echo.Context, data any) error {
	return write(c, http.StatusOK, data)
}

func Created(c echo.Context, data any) error {
	return write(c, http.StatusCreated, data)
}

func Message(c echo.Context, message string) error {
	return OK(c, MessageData{Message: message})
}

// Attachment sends content as a file download, outside the envelope.
func Attachment(c echo.Context, fileName, contentType string, content []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))

	return c.Blob(http.StatusOK, contentType, content)
}

// Error writes a failure. Details are dropped for 5xx and auth failures so
// they never reveal internals or account state.
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// Internal is the generic answer for errors with no known kind.
func Internal(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later", nil)
}

func write(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
