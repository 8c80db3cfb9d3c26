package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salescrm/internal/domain/auth"
	"salescrm/internal/pkg/response"
)

// RequirePermission gates a route on the authenticated user's role having
// the named permission. Runs after Auth.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !auth.HasPermission(auth.Role(role.(string)), permission) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly requires the admin role regardless of permission table contents.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != string(auth.RoleAdmin) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
