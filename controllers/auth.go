package controllers

import (
	"net/http"
	"strings"

	"renthub/accounts"
	"renthub/models"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      models.User `json:"user"`
}

// POST /api/signup (public)
func (h *Handler) Signup(c *gin.Context) {
	var req accounts.SignupInput
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.accounts.Signup(c.Request.Context(), req)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	h.respondToken(c, http.StatusCreated, user)
}

// POST /api/login (public)
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		RespondError(c, "email and password are required", http.StatusBadRequest)
		return
	}
	user, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	h.respondToken(c, http.StatusOK, user)
}

func (h *Handler) respondToken(c *gin.Context, code int, user models.User) {
	token, exp, err := h.tokens.Issue(user)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(code, LoginResponse{Token: token, ExpiresAt: exp, User: user})
}

// GET /api/me
func (h *Handler) Me(c *gin.Context) {
	user, err := h.accounts.Me(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, user)
}

// POST /api/change-password
// Body: { "current_password": "...", "new_password": "..." }
func (h *Handler) ChangePassword(c *gin.Context) {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.accounts.ChangePassword(c.Request.Context(), principal(c), req.CurrentPassword, req.NewPassword); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "password updated")
}
