package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymcoach/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the given role.
// It must run after JWTAuth.
func RequireRole(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != required {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts the route to administrators.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
