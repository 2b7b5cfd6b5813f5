package middleware

import (
	"net/http"

	"bookmychair/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequireRole lets the request through only when the authenticated user has
// one of roles. It must run after JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Not authenticated"})
			return
		}
		if _, ok := allowed[user.Role]; !ok {
			zap.L().Warn("Permission denied",
				zap.String("userId", user.ID),
				zap.String("role", user.Role),
				zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Access denied"})
			return
		}
		c.Next()
	}
}
