package deal

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	deals := r.Group("/deals", middleware.RequirePermission(auth.PermViewDeals))
	{
		deals.GET("", handler.List)
		deals.GET("/kanban", handler.Kanban)
		deals.GET("/:id", handler.Get)
		deals.POST("", middleware.RequirePermission(auth.PermEditDeals), handler.Create)
		deals.PATCH("/:id", middleware.RequirePermission(auth.PermEditDeals), handler.Update)
		deals.PATCH("/:id/stage", middleware.RequirePermission(auth.PermEditDeals), handler.MoveStage)
	}
}
