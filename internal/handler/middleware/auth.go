package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"rembayung-api/internal/handler/httperr"
	"rembayung-api/internal/pkg/cookie"
	"rembayung-api/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxAdminIDKey = "admin_id"

var errUnauthorized = errs.New("unauthorized")

// TokenValidator checks an access token and yields the admin it belongs to.
// Implemented by the jwt service.
type TokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth gates the admin capability set. The session token is read from
// the HttpOnly cookie first, then from a bearer header for non-browser
// clients.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAccessToken(c)

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Authentication required", nil)
			return
		}

		adminID, err := m.tokenValidator.ValidateAccessToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Invalid or expired session", nil)
			return
		}

		c.Set(ctxAdminIDKey, adminID)
		c.Next()
	}
}

func GetAdminID(c *gin.Context) (uuid.UUID, bool) {
	adminID, exists := c.Get(ctxAdminIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := adminID.(uuid.UUID)
	return id, ok
}
