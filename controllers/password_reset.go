package controllers

import (
	"net/http"

	"renthub/logger"

	"github.com/gin-gonic/gin"
)

const forgotPasswordMessage = "if the email is registered, a reset code has been sent"

// POST /api/forgot-password (public)
// Body: { "email": "..." }
// A resposta é sempre a mesma (anti enumeração).
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" form:"email"`
	}
	if err := c.ShouldBind(&req); err != nil {
		RespondMessage(c, forgotPasswordMessage)
		return
	}
	if err := h.accounts.IssueResetCode(c.Request.Context(), req.Email); err != nil {
		logger.Error("forgot password failed", "email", req.Email, "request_id", c.GetString(CtxRequestIDKey), "err", err.Error())
	}
	RespondMessage(c, forgotPasswordMessage)
}

// POST /api/reset-password (public)
// Body: { "email": "...", "code": "1234567", "new_password": "...", "confirm_new_password": "..." }
func (h *Handler) ResetPassword(c *gin.Context) {
	var req struct {
		Email              string `json:"email"`
		Code               string `json:"code"`
		NewPassword        string `json:"new_password"`
		ConfirmNewPassword string `json:"confirm_new_password"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if req.NewPassword != req.ConfirmNewPassword {
		RespondError(c, "passwords do not match", http.StatusBadRequest)
		return
	}
	if err := h.accounts.RedeemResetCode(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "password updated")
}
