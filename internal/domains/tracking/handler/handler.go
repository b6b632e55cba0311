package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/tracking/model"
	"skillax-backend/internal/domains/tracking/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Track - POST /api/track/pageview
func (h *Handler) Track(c *gin.Context) {
	var req model.TrackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	view, err := h.service.Track(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{"status": "tracked", "id": view.ID})
}
