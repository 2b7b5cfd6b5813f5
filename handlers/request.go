package handlers

import (
	"errors"
	"net/http"

	"bookmychair/middleware"
	"bookmychair/models"
	"bookmychair/services/apperr"
	"bookmychair/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindBody decodes the JSON body into dst. Field rule failures are left to
// the service, which reports them in domain terms; only undecodable bodies
// fail here.
func bindBody(c *gin.Context, dst any, invalid string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return true
	}
	utils.RespondError(c, apperr.Validation(invalid))
	return false
}

func mustUser(c *gin.Context) (models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Not authenticated", "")
		c.Abort()
	}
	return user, ok
}
