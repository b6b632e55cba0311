package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/analytics/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Summary - GET /api/analytics/summary
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, summary)
}

// LeadsBySource - GET /api/analytics/leads-by-source
func (h *Handler) LeadsBySource(c *gin.Context) {
	rows, err := h.service.LeadsBySource(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, rows)
}

// LeadsByInterest - GET /api/analytics/leads-by-interest
func (h *Handler) LeadsByInterest(c *gin.Context) {
	rows, err := h.service.LeadsByInterest(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, rows)
}

// LeadConversion - GET /api/analytics/lead-conversion
func (h *Handler) LeadConversion(c *gin.Context) {
	stats, err := h.service.LeadConversion(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, stats)
}

// PageViews - GET /api/analytics/page-views?days=N
func (h *Handler) PageViews(c *gin.Context) {
	days := 0
	if daysStr := c.Query("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil {
			days = d
		}
	}

	rows, err := h.service.PageViews(c.Request.Context(), days)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, rows)
}

// TopPages - GET /api/analytics/top-pages
func (h *Handler) TopPages(c *gin.Context) {
	rows, err := h.service.TopPages(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, rows)
}

// VisitorsByCountry - GET /api/analytics/visitors-by-country
func (h *Handler) VisitorsByCountry(c *gin.Context) {
	rows, err := h.service.VisitorsByCountry(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, rows)
}

// Profiles - GET /api/analytics/profiles
func (h *Handler) Profiles(c *gin.Context) {
	stats, err := h.service.Profiles(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, stats)
}
