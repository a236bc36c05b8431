package salary

import (
	"net/http"
	"time"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Calculate(c *gin.Context) {
	var req CalculateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, appErr.Status, appErr.Code, appErr.Message, err.Error())
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid startDate format, expected YYYY-MM-DD", nil)
		return
	}

	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid endDate format, expected YYYY-MM-DD", nil)
		return
	}

	if start.After(end) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Start date must be before or equal to end date", nil)
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), req.EmployeeNumber, start, end)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
