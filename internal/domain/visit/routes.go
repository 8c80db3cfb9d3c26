package visit

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	visits := r.Group("/visits")
	{
		visits.GET("", handler.List)
		visits.GET("/:id", handler.Get)
		visits.POST("/check-in", middleware.RequirePermission(auth.PermEditVisits), handler.CheckIn)
		visits.POST("/check-out", middleware.RequirePermission(auth.PermEditVisits), handler.CheckOut)
	}
}
