package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrEmployeeNumberConflict = apperror.New(
		apperror.CodeConflict,
		"An employee with this employee number already exists",
		http.StatusConflict,
	)

	ErrDailyRateNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"Daily rate must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid dateOfBirth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrDuplicateWorkingDay = apperror.New(
		apperror.CodeInvalidInput,
		"Working days must not contain duplicate weekdays",
		http.StatusBadRequest,
	)
)
