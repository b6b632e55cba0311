package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/domains/media/service"
	"skillax-backend/internal/shared/response"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Upload - POST /api/admin/uploads
// Multipart form with a single "file" field.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file field is required")
		return
	}
	if fileHeader.Size > service.MaxUploadSize {
		response.BadRequest(c, "file exceeds 5MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "unable to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, service.MaxUploadSize+1))
	if err != nil {
		response.BadRequest(c, "unable to read uploaded file")
		return
	}

	url, err := h.service.UploadImage(c.Request.Context(),
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Raw(c, http.StatusOK, gin.H{"url": url})
}
