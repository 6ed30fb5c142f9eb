package middleware

import (
	"net/http"
	"strings"

	"shiftpro_backend/internal/models"
	"shiftpro_backend/internal/services"
	"shiftpro_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// sessionContextKey is where the materialized session lives in the request context.
const sessionContextKey = "session"

// SessionMiddleware validates the bearer session token and attaches the
// materialized session (user + frozen capability set) to the context.
func SessionMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		session, err := authService.SessionFromToken(parts[1])
		if err != nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired session", ""))
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// PermissionMiddleware blocks the request unless the session holds at least
// one of the given permissions. The admin wildcard passes every check.
func PermissionMiddleware(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFromContext(c)
		if session == nil {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No active session. Ensure SessionMiddleware runs first.", ""))
			return
		}

		for _, permission := range permissions {
			if session.Has(permission) {
				c.Next()
				return
			}
		}

		utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden,
			"You do not have permission to perform this action. Required: "+strings.Join(permissions, " or "), ""))
	}
}

// SessionFromContext returns the session attached by SessionMiddleware, or nil.
func SessionFromContext(c *gin.Context) *models.Session {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil
	}
	session, ok := value.(*models.Session)
	if !ok {
		return nil
	}
	return session
}
