package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/profile/model"
	"skillax-backend/internal/domains/profile/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/profiles
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profile, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, profile)
}

// GetByCode - GET /api/profiles/:code
func (h *Handler) GetByCode(c *gin.Context) {
	profile, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, profile)
}

// ListAll - GET /api/admin/profiles
func (h *Handler) ListAll(c *gin.Context) {
	profiles, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, profiles)
}
