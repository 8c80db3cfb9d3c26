package dashboard

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/dashboard", middleware.RequirePermission(auth.PermViewDashboard), handler.Summary)
}
