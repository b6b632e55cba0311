package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/admin/model"
	"skillax-backend/internal/domains/admin/service"
	"skillax-backend/internal/shared/middleware"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Login - POST /api/admin/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, resp)
}

// Me - GET /api/admin/me
func (h *Handler) Me(c *gin.Context) {
	email := c.GetString(middleware.CtxEmail)
	user, err := h.service.Me(c.Request.Context(), email)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, user)
}

// Seed - POST /api/seed
func (h *Handler) Seed(c *gin.Context) {
	if err := h.service.Seed(c.Request.Context()); err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{
		"message":     "Data seeded successfully",
		"admin_email": service.SeedAdminEmail,
	})
}
