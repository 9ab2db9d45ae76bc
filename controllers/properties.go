package controllers

import (
	"net/http"
	"strings"

	"renthub/lifecycle"
	"renthub/models"
	"renthub/store"

	"github.com/gin-gonic/gin"
)

// propertyFilter reads the search query string:
// city, property_type, q, min_rent, max_rent, bedrooms, furnished, status, limit, offset.
func propertyFilter(c *gin.Context) (store.PropertyFilter, error) {
	f := store.PropertyFilter{
		City:         strings.TrimSpace(c.Query("city")),
		PropertyType: strings.TrimSpace(c.Query("property_type")),
		Query:        strings.TrimSpace(c.Query("q")),
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		f.Statuses = []string{status}
	}

	var err error
	if f.MinRent, err = queryFloat(c, "min_rent"); err != nil {
		return f, err
	}
	if f.MaxRent, err = queryFloat(c, "max_rent"); err != nil {
		return f, err
	}
	if f.MinBedrooms, err = queryInt(c, "bedrooms"); err != nil {
		return f, err
	}
	if f.Furnished, err = queryBool(c, "furnished"); err != nil {
		return f, err
	}
	if f.Limit, err = queryInt(c, "limit"); err != nil {
		return f, err
	}
	if f.Offset, err = queryInt(c, "offset"); err != nil {
		return f, err
	}
	return f, nil
}

// GET /api/properties (public)
func (h *Handler) ListProperties(c *gin.Context) {
	filter, err := propertyFilter(c)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	properties, err := h.lifecycle.ListProperties(c.Request.Context(), principal(c), filter)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, properties)
}

// GET /api/properties/:id (public)
func (h *Handler) GetProperty(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	property, err := h.lifecycle.GetProperty(c.Request.Context(), principal(c), id)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, property)
}

// GET /api/my-properties (owner)
func (h *Handler) MyProperties(c *gin.Context) {
	properties, err := h.lifecycle.ListOwnProperties(c.Request.Context(), principal(c))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, properties)
}

// POST /api/properties (owner)
func (h *Handler) CreateProperty(c *gin.Context) {
	var req models.Property
	if !bindJSON(c, &req) {
		return
	}
	property, err := h.lifecycle.CreateProperty(c.Request.Context(), principal(c), req)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, property)
}

// PUT /api/properties/:id (owner)
func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req models.Property
	if !bindJSON(c, &req) {
		return
	}
	property, err := h.lifecycle.UpdateProperty(c.Request.Context(), principal(c), id, req)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondSuccess(c, property)
}

// PUT /api/properties/:id/status (owner)
// Body: { "status": "available|maintenance|pending_approval" }
func (h *Handler) UpdatePropertyStatus(c *gin.Context) {
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
	if err := h.lifecycle.UpdatePropertyStatus(c.Request.Context(), principal(c), id, req.Status); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "property status updated")
}

// DELETE /api/properties/:id (owner)
func (h *Handler) DeleteProperty(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.lifecycle.DeleteProperty(c.Request.Context(), principal(c), id); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondMessage(c, "property deleted")
}

// POST /api/properties/:id/images (owner, multipart)
// Fields: image (file), caption, is_primary
func (h *Handler) UploadPropertyImage(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	file, err := c.FormFile("image")
	if err != nil {
		RespondError(c, "image file is required", http.StatusBadRequest)
		return
	}
	if file.Size > h.maxUpload {
		RespondError(c, "image too large", http.StatusRequestEntityTooLarge)
		return
	}
	body, err := file.Open()
	if err != nil {
		RespondError(c, "unreadable image", http.StatusBadRequest)
		return
	}
	defer body.Close()

	image, err := h.lifecycle.AddPropertyImage(c.Request.Context(), principal(c), id, lifecycle.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Body:        body,
		Caption:     c.PostForm("caption"),
		IsPrimary:   c.PostForm("is_primary") == "true",
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, image)
}
