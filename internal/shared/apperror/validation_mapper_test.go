package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"go-payroll/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"omitempty,email"`
}

func TestMapValidationError(t *testing.T) {
	validate := validator.New()

	t.Run("required field", func(t *testing.T) {
		err := validate.Struct(sampleRequest{})

		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		if assert.ErrorAs(t, mapped, &appErr) {
			assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
			assert.Equal(t, "Name is required", appErr.Message)
		}
	})

	t.Run("tag other than required", func(t *testing.T) {
		err := validate.Struct(sampleRequest{
			Name:  "Razak Ahmad",
			Email: "not-an-email",
		})

		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		if assert.ErrorAs(t, mapped, &appErr) {
			assert.Equal(t, "Email is invalid", appErr.Message)
		}
	})

	t.Run("non-validator error falls back to invalid input", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("unexpected EOF"))

		assert.ErrorIs(t, mapped, apperror.ErrInvalidInput)
	})
}
