package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shomadhan-be/models"
)

// RequireRole aborts unless the authenticated caller has one of the allowed
// roles. Must run after AuthMiddleware.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	roles := make(map[models.Role]bool, len(allowed))
	for _, r := range allowed {
		roles[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		role, ok := roleVal.(string)
		if !exists || !ok || !roles[models.Role(role)] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
