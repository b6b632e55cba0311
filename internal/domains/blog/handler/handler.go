package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/blog/model"
	"skillax-backend/internal/domains/blog/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// ListPublished - GET /api/blogs
// Query params: category, limit, skip
func (h *Handler) ListPublished(c *gin.Context) {
	filter := model.ListFilter{Category: c.Query("category")}
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = l
		}
	}
	if skipStr := c.Query("skip"); skipStr != "" {
		if s, err := strconv.Atoi(skipStr); err == nil {
			filter.Skip = s
		}
	}

	posts, err := h.service.ListPublished(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, posts)
}

// GetBySlug - GET /api/blogs/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, post)
}

// ListAll - GET /api/admin/blogs
func (h *Handler) ListAll(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, posts)
}

// Create - POST /api/blogs
func (h *Handler) Create(c *gin.Context) {
	var req model.UpsertBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, post)
}

// Update - PUT /api/blogs/:id
func (h *Handler) Update(c *gin.Context) {
	var req model.UpsertBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, post)
}

// SetPublished - PATCH /api/blogs/:id/publish?published=
func (h *Handler) SetPublished(c *gin.Context) {
	published, err := strconv.ParseBool(c.DefaultQuery("published", "true"))
	if err != nil {
		response.BadRequest(c, "published must be true or false")
		return
	}

	if err := h.service.SetPublished(c.Request.Context(), c.Param("id"), published); err != nil {
		response.FromError(c, err)
		return
	}
	msg := "Blog published"
	if !published {
		msg = "Blog unpublished"
	}
	response.Raw(c, http.StatusOK, gin.H{"message": msg})
}

// Delete - DELETE /api/blogs/:id
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}
