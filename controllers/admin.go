package controllers

import "github.com/gin-gonic/gin"

// GET /api/admin/users
func (h *Handler) AdminListUsers(c *gin.Context) {
	users, err := h.lifecycle.ListUsers(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, users)
}

// DELETE /api/admin/users/:id
// Remove o usuário e tudo que pertence a ele. Admins não podem ser removidos.
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.lifecycle.DeleteUser(c.Request.Context(), principal(c), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "user deleted")
}

// PUT /api/admin/users/:id/role
// Body: { "role": "tenant|owner|admin" }
func (h *Handler) AdminChangeUserRole(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Role string `json:"role"`
	}
	if !bindJSON(c, &req) {
		return
	}
	if err := h.lifecycle.ChangeUserRole(c.Request.Context(), principal(c), id, req.Role); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "role updated")
}

// GET /api/admin/rentals
func (h *Handler) AdminListRentals(c *gin.Context) {
	rentals, err := h.lifecycle.ListAllRentals(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, rentals)
}

// GET /api/admin/properties
// Aceita os mesmos filtros de /properties, incluindo status.
func (h *Handler) AdminListProperties(c *gin.Context) {
	filter, err := propertyFilter(c)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	properties, err := h.lifecycle.ListAllProperties(c.Request.Context(), principal(c), filter)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, properties)
}
