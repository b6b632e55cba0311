package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/chat/model"
	"skillax-backend/internal/domains/chat/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Send - POST /api/chat
func (h *Handler) Send(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Send(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, resp)
}
