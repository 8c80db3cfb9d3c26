package lead

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads", middleware.RequirePermission(auth.PermViewLeads))
	{
		leads.GET("", handler.List)
		leads.GET("/:id", handler.Get)
		leads.POST("", middleware.RequirePermission(auth.PermEditLeads), handler.Create)
		leads.PATCH("/:id", middleware.RequirePermission(auth.PermEditLeads), handler.Update)
		leads.PATCH("/:id/status", middleware.RequirePermission(auth.PermEditLeads), handler.UpdateStatus)
		leads.DELETE("/:id", middleware.RequirePermission(auth.PermEditLeads), handler.Delete)
		leads.POST("/:id/convert", middleware.RequirePermission(auth.PermConvertLeads), handler.Convert)
	}
}
