// Package validator adapts go-playground/validator to echo.
package validator

import (
	"strings"

	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// FieldError describes one rejected field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Validator implements echo.Validator.
type Validator struct {
	validate *playground.Validate
}

// New creates a validator that reports json field names.
func New() *Validator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Validator{validate: v}
}

// Validate returns ErrValidationFailed listing every rejected field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range Fields(fieldErrs) {
		parts = append(parts, fe.Field+": "+fe.Rule)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(parts, ", "))
}

// Fields flattens validator errors into field/rule pairs.
func Fields(errs playground.ValidationErrors) []FieldError {
	out := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		out = append(out, FieldError{Field: fieldPath(fe.Namespace()), Rule: rule})
	}

	return out
}

// fieldPath drops the struct name from "Input.history[0].role".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}

	return namespace
}
