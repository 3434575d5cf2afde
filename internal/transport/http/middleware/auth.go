package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"boardhub/internal/app"
	"boardhub/internal/transport/http/response"
)

const ContextUserIDKey = "user_id"

// AuthRequired extracts the bearer token and resolves the caller identity
// through the auth service, which also checks the session store. The
// resolved user id is placed in the gin context under ContextUserIDKey.
func AuthRequired(authService *app.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Unauthorized(c, response.CodeUnauthorized, "missing authorization header")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Unauthorized(c, response.CodeUnauthorized, "invalid authorization scheme")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		userID, err := authService.ResolveIdentity(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, app.ErrSessionStore) {
				response.Error(c, http.StatusInternalServerError, response.CodeInternalServer, "session store unavailable")
			} else {
				response.Unauthorized(c, response.CodeUnauthorized, "invalid or expired token")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// CallerID returns the authenticated user id set by AuthRequired.
func CallerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}
