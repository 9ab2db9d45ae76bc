package controllers

import "github.com/gin-gonic/gin"

// POST /api/properties/:id/favorite (tenant)
func (h *Handler) AddFavorite(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	favorite, err := h.lifecycle.AddFavorite(c.Request.Context(), principal(c), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, favorite)
}

// DELETE /api/properties/:id/favorite (tenant)
func (h *Handler) RemoveFavorite(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.lifecycle.RemoveFavorite(c.Request.Context(), principal(c), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "favorite removed")
}

// GET /api/favorites (tenant)
func (h *Handler) ListFavorites(c *gin.Context) {
	favorites, err := h.lifecycle.ListFavorites(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, favorites)
}
