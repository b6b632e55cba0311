package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/lead/model"
	"skillax-backend/internal/domains/lead/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Create - POST /api/leads
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	lead, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, lead)
}

// SubmitContact - POST /api/contact
func (h *Handler) SubmitContact(c *gin.Context) {
	var req model.ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	lead, err := h.service.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{
		"message": "Thank you for contacting us! We'll get back to you soon.",
		"lead_id": lead.ID,
	})
}

// List - GET /api/admin/leads
// Query params: status, source, limit, skip
func (h *Handler) List(c *gin.Context) {
	filter := model.ListFilter{
		Status: c.Query("status"),
		Source: c.Query("source"),
	}
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

	leads, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, leads)
}

// UpdateStatus - PATCH /api/leads/:id/status?status=
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	status := c.Query("status")
	if err := h.service.UpdateStatus(c.Request.Context(), id, status); err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{
		"message": "Lead status updated",
		"lead_id": id,
		"status":  status,
	})
}

// Export - GET /api/admin/leads/export
func (h *Handler) Export(c *gin.Context) {
	data, err := h.service.ExportXLSX(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	filename := "leads-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
