package apperror

import (
	"fmt"
	"net/http"
)

var ErrInvalidInput = New(
	CodeInvalidInput,
	"The provided input is invalid",
	http.StatusBadRequest,
)

// RequiredField builds the standard "X is required" validation error.
func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

// InvalidField builds the standard "X is invalid" validation error.
func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
