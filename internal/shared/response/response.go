package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/shared/errs"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error is the wire shape for failures: a taxonomy kind plus a message.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Raw writes data without the envelope. Used by endpoints whose body shape
// the web client already depends on (lists, analytics payloads).
func Raw(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Fail(c *gin.Context, statusCode int, kind, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Kind:    kind,
			Message: message,
		},
	})
}

// FromError maps a domain error to its status code and renders it. Errors
// outside the taxonomy are reported as a generic 500 without leaking detail.
func FromError(c *gin.Context, err error) {
	Fail(c, statusCode(err), errs.Kind(err), message(err))
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated),
		errors.Is(err, errs.ErrExpiredCredential),
		errors.Is(err, errs.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func message(err error) string {
	if errs.Kind(err) == "internal" {
		return "Internal server error"
	}
	if errors.Is(err, errs.ErrUpstreamUnavailable) {
		return "Service temporarily unavailable"
	}
	return err.Error()
}

func BadRequest(c *gin.Context, msg string) {
	Fail(c, http.StatusBadRequest, "validation_failed", msg)
}

func Unauthorized(c *gin.Context, kind, msg string) {
	Fail(c, http.StatusUnauthorized, kind, msg)
}

func Forbidden(c *gin.Context, msg string) {
	Fail(c, http.StatusForbidden, "forbidden", msg)
}
