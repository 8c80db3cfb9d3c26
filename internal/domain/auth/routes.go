package auth

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers unauthenticated auth routes.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/login", handler.Login)
}

// RegisterProtectedRoutes registers routes behind the auth middleware.
func RegisterProtectedRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/me", handler.Me)
}

// RegisterAdminRoutes registers user management routes.
func RegisterAdminRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/users", handler.Register)
}
