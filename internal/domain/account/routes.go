package account

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	accounts := r.Group("/accounts")
	{
		accounts.GET("", handler.List)
		accounts.GET("/:id", handler.Get)
		accounts.POST("", middleware.RequirePermission(auth.PermEditAccounts), handler.Create)
		accounts.PATCH("/:id", middleware.RequirePermission(auth.PermEditAccounts), handler.Update)
	}
}
