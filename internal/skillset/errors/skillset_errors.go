package skillseterrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSkillsetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Skillset not found",
		http.StatusNotFound,
	)
)
