package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/course/model"
	"skillax-backend/internal/domains/course/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// ListActive - GET /api/courses
func (h *Handler) ListActive(c *gin.Context) {
	courses, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, courses)
}

// GetBySlug - GET /api/courses/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	course, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, course)
}

// Create - POST /api/courses
func (h *Handler) Create(c *gin.Context) {
	var req model.UpsertCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	course, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, course)
}

// Update - PUT /api/courses/:id
func (h *Handler) Update(c *gin.Context) {
	var req model.UpsertCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	course, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, course)
}

// SetActive - PATCH /api/admin/courses/:id/status?active=
func (h *Handler) SetActive(c *gin.Context) {
	active, err := strconv.ParseBool(c.DefaultQuery("active", "true"))
	if err != nil {
		response.BadRequest(c, "active must be true or false")
		return
	}

	if err := h.service.SetActive(c.Request.Context(), c.Param("id"), active); err != nil {
		response.FromError(c, err)
		return
	}
	msg := "Course activated"
	if !active {
		msg = "Course deactivated"
	}
	response.Raw(c, http.StatusOK, gin.H{"message": msg})
}
