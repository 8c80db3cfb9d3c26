package pipeline

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	stages := r.Group("/pipelines")
	{
		stages.GET("", handler.List)
		stages.POST("", middleware.RequirePermission(auth.PermManagePipeline), handler.Create)
		stages.PATCH("/:id", middleware.RequirePermission(auth.PermManagePipeline), handler.Update)
		stages.DELETE("/:id", middleware.RequirePermission(auth.PermManagePipeline), handler.Delete)
	}
}
