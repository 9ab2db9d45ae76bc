package controllers

import (
	"renthub/lifecycle"

	"github.com/gin-gonic/gin"
)

// GET /api/messages
func (h *Handler) ListMessages(c *gin.Context) {
	messages, err := h.lifecycle.ListMessages(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, messages)
}

// POST /api/messages
func (h *Handler) SendMessage(c *gin.Context) {
	var req lifecycle.MessageInput
	if !bindJSON(c, &req) {
		return
	}
	message, err := h.lifecycle.SendMessage(c.Request.Context(), principal(c), req)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, message)
}
