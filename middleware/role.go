package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole refuses callers whose principal role is not in the allowed
// set. Admins always pass.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		if p.IsAdmin() {
			c.Next()
			return
		}
		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role"})
	}
}

// RequireAdmin refuses everyone but admins.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole()
}
