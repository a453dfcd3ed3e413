package validator

import (
	"testing"

	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/service"
	"ewarrants/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Valid(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterInput{FullName: "Jane", Email: "jane@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.RegisterInput{FullName: "Jane", Email: "not-an-email", Password: "123"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, "email: email, password: min=6", baseErr.Details())
}

func TestValidator_DivesIntoHistory(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.ChatInput{
		Message: "hi",
		History: []service.ChatTurn{{Role: "system", Text: "x"}},
	})
	require.Error(t, err)

	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, "history[0].role: oneof=user model", baseErr.Details())
}

func TestValidator_VerifyCodeShape(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&usecase.VerifyEmailInput{Email: "a@b.co", Code: "012345"}))
	assert.Error(t, v.Validate(&usecase.VerifyEmailInput{Email: "a@b.co", Code: "12a456"}))
	assert.Error(t, v.Validate(&usecase.VerifyEmailInput{Email: "a@b.co", Code: "1234"}))
}
