package contact

import (
	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	contacts := r.Group("/contacts")
	{
		contacts.GET("", handler.List)
		contacts.GET("/:id", handler.Get)
		contacts.POST("", middleware.RequirePermission(auth.PermEditContacts), handler.Create)
		contacts.PATCH("/:id", middleware.RequirePermission(auth.PermEditContacts), handler.Update)
		contacts.DELETE("/:id", middleware.RequirePermission(auth.PermEditContacts), handler.Delete)
	}
}
