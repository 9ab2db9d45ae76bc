package controllers

import (
	"net/http"
	"strings"

	"renthub/apperr"
	"renthub/models"
	"renthub/policy"

	"github.com/gin-gonic/gin"
)

const ctxUserKey = "auth_user"

// AuthRequired validates the Bearer token and loads the user into the context.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.authenticate(c, true) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthOptional loads the user when a token is sent and lets anonymous
// requests through. A token that fails verification is still rejected.
func (h *Handler) AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !h.authenticate(c, false) {
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *Handler) authenticate(c *gin.Context, required bool) bool {
	header := c.GetHeader("Authorization")
	if header == "" && !required {
		return true
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		RespondError(c, "authentication required", http.StatusUnauthorized)
		return false
	}

	claims, err := h.tokens.Parse(strings.TrimSpace(header[len("Bearer "):]))
	if err != nil {
		RespondError(c, err.Error(), http.StatusUnauthorized)
		return false
	}

	user, err := h.users.FindByID(claims.Sub)
	if err != nil {
		if apperr.IsNotFound(err) {
			RespondError(c, "user not found", http.StatusUnauthorized)
		} else {
			RespondAppError(c, err)
		}
		return false
	}
	c.Set(ctxUserKey, user)
	return true
}

// GetUserLogged returns the user loaded by AuthRequired/AuthOptional.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

// principal is the policy view of the caller; anonymous without a user.
func principal(c *gin.Context) policy.Principal {
	if user, ok := GetUserLogged(c); ok {
		return policy.PrincipalOf(user)
	}
	return policy.Anonymous()
}

