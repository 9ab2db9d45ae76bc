package router

import (
	"net/http"

	"renthub/apperr"
	"renthub/controllers"
	"renthub/models"

	"github.com/gin-gonic/gin"
)

// Adminizer blocks access when user is not admin.
func Adminizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "authentication required", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if user.EffectiveRole() != models.ROLE_ADMIN {
			controllers.RespondAppError(c, apperr.RoleRequired(models.ROLE_ADMIN))
			c.Abort()
			return
		}
		c.Next()
	}
}
