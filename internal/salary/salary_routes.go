package salary

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/employees/calculate-salary",
		middleware.RateLimitByIP(2, 10),
		handler.Calculate,
	)
}
