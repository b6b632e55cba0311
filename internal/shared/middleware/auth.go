package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/shared/errs"
	"skillax-backend/internal/shared/response"
	"skillax-backend/pkg/jwt"
)

// Context keys set by RequireAdmin for downstream handlers.
const (
	CtxUserID = "userID"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// RequireAdmin gates mutating and administrative operations. A missing
// credential is a normal input, not a transport error: it maps to 401
// unauthenticated. An invalid or expired token surfaces the token service's
// own kind. A valid token without the admin role maps to 403. Public routes
// never pass through this middleware.
func RequireAdmin(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, errs.Kind(errs.ErrUnauthenticated), "Not authenticated")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, errs.Kind(errs.ErrUnauthenticated), "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := manager.Verify(parts[1])
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		if claims.Role != "admin" {
			response.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}
