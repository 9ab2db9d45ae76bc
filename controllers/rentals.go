package controllers

import (
	"renthub/lifecycle"

	"github.com/gin-gonic/gin"
)

// rentalRequest takes dates as YYYY-MM-DD strings.
type rentalRequest struct {
	PropertyID      int64   `json:"property_id"`
	TenantID        int64   `json:"tenant_id"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	RentAmount      float64 `json:"rent_amount"`
	SecurityDeposit float64 `json:"security_deposit"`
	Status          string  `json:"status"`
}

func (r rentalRequest) input() (lifecycle.RentalInput, error) {
	in := lifecycle.RentalInput{
		PropertyID:      r.PropertyID,
		TenantID:        r.TenantID,
		RentAmount:      r.RentAmount,
		SecurityDeposit: r.SecurityDeposit,
		Status:          r.Status,
	}
	var err error
	if in.StartDate, err = parseDate("start_date", r.StartDate); err != nil {
		return in, err
	}
	if in.EndDate, err = parseDate("end_date", r.EndDate); err != nil {
		return in, err
	}
	return in, nil
}

// GET /api/rentals
// Admin vê todos, owner os dos seus imóveis, tenant os próprios.
func (h *Handler) ListRentals(c *gin.Context) {
	rentals, err := h.lifecycle.ListRentals(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, rentals)
}

// POST /api/rentals (owner)
func (h *Handler) CreateRental(c *gin.Context) {
	var req rentalRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	rental, err := h.lifecycle.CreateRental(c.Request.Context(), principal(c), in)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, rental)
}

// PUT /api/rentals/:id (owner)
func (h *Handler) UpdateRental(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req rentalRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		RespondAppError(c, err)
		return
	}
	rental, err := h.lifecycle.UpdateRental(c.Request.Context(), principal(c), id, in)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, rental)
}

// PUT /api/rentals/:id/status (owner)
// Body: { "status": "active|expired|terminated" }
func (h *Handler) UpdateRentalStatus(c *gin.Context) {
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
	if err := h.lifecycle.UpdateRentalStatus(c.Request.Context(), principal(c), id, req.Status); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "rental status updated")
}

// DELETE /api/rentals/:id (owner)
func (h *Handler) DeleteRental(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.lifecycle.DeleteRental(c.Request.Context(), principal(c), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "rental deleted")
}
