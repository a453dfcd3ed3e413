package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"ewarrants/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	err := ErrWarrantyNotFound.WrapMessage("warranty lookup")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "WARRANTY_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrWarrantyNotFound))
}

func TestBaseError_WithDetailsMatchesOriginal(t *testing.T) {
	err := ErrValidationFailed.WithDetails("productName is required")

	assert.Equal(t, "productName is required", err.Details())
	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestUpstreamError_HidesCause(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := errors.Wrap(NewUpstreamError("gemini", cause), "process receipt")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPCode())
	assert.Equal(t, "UPSTREAM_FAILED", appErr.ErrorCode())
	assert.NotContains(t, appErr.Message(), "connection refused")
	assert.Empty(t, appErr.Details())

	assert.True(t, errors.Is(err, ErrUpstreamFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "gemini request failed")
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := stderrors.New("deadlock detected")
	err := NewDatabaseExecuteError(cause, "failed to update warranty")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to update warranty", err.Details())
}
