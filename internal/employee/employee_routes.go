package employee

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/search", handler.Search)
		employees.GET("/by-number/:employeeNumber", handler.GetByNumber)
		employees.GET("/:id", handler.GetByID)
		employees.POST("",
			middleware.RateLimitByIP(1, 5),
			middleware.Idempotency(rdb),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
		employees.POST("/:id/archive",
			middleware.RateLimitByIP(1, 5),
			handler.Archive,
		)
		employees.POST("/:id/unarchive",
			middleware.RateLimitByIP(1, 5),
			handler.Unarchive,
		)
	}
}
