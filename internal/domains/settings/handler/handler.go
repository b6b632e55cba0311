package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/settings/model"
	"skillax-backend/internal/domains/settings/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Get - GET /api/settings
func (h *Handler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, settings)
}

// Update - PUT /api/admin/settings
func (h *Handler) Update(c *gin.Context) {
	var settings model.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.Update(c.Request.Context(), &settings); err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{"message": "Settings updated successfully"})
}
