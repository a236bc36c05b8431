package skillset

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	skills := r.Group("/skillsets")
	{
		skills.GET("", handler.GetAll)
		skills.GET("/:id", handler.GetByID)
	}
}
