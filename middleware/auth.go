package middleware

import (
	"net/http"
	"strings"

	"bookmychair/models"
	"bookmychair/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userContextKey = "user"

// JWTAuthMiddleware requires a valid bearer token and stores its user on the
// context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		user, err := utils.ExtractUserFromToken(tokenString)
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.Error(err), zap.String("ip", getClientIP(c)))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid token"})
			return
		}

		c.Set(userContextKey, *user)
		c.Next()
	}
}

// CurrentUser returns the user JWTAuthMiddleware stored, if any.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
