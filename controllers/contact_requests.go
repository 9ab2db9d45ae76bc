package controllers

import (
	"renthub/lifecycle"

	"github.com/gin-gonic/gin"
)

// GET /api/contact-requests (owner or tenant)
func (h *Handler) ListContactRequests(c *gin.Context) {
	requests, err := h.lifecycle.ListContactRequests(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, requests)
}

// POST /api/contact-requests (tenant)
func (h *Handler) CreateContactRequest(c *gin.Context) {
	var req struct {
		PropertyID    int64  `json:"property_id"`
		Message       string `json:"message"`
		Phone         string `json:"phone"`
		PreferredDate string `json:"preferred_date"`
		InquiryType   string `json:"inquiry_type"`
	}
	if !bindJSON(c, &req) {
		return
	}
	in := lifecycle.ContactRequestInput{
		PropertyID:  req.PropertyID,
		Message:     req.Message,
		Phone:       req.Phone,
		InquiryType: req.InquiryType,
	}
	preferred, err := parseDate("preferred_date", req.PreferredDate)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	if !preferred.IsZero() {
		in.PreferredDate = &preferred
	}

	request, err := h.lifecycle.CreateContactRequest(c.Request.Context(), principal(c), in)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, request)
}

// PUT /api/contact-requests/:id/status (owner or tenant party)
// Body: { "status": "pending|responded|closed" }
func (h *Handler) UpdateContactRequestStatus(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.lifecycle.UpdateContactRequestStatus(c.Request.Context(), principal(c), id, req.Status); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "contact request updated")
}
