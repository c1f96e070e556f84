package api

import (
	"net/http"

	reqdto "rembayung-api/internal/handler/dto/request"
	resdto "rembayung-api/internal/handler/dto/response"
	"rembayung-api/internal/handler/httperr"
	"rembayung-api/internal/handler/middleware"
	"rembayung-api/internal/pkg/config"
	"rembayung-api/internal/pkg/cookie"
	"rembayung-api/internal/pkg/jwt"
	"rembayung-api/internal/usecase/commands"
	"rembayung-api/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
)

var errNoSession = errors.New("no active session")

type AuthHandler struct {
	authCommands commands.AuthCommands
	adminQueries queries.AdminQueries
	jwtService   *jwt.Service
	cfg          config.Config
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	adminQueries queries.AdminQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		adminQueries: adminQueries,
		jwtService:   jwtService,
		cfg:          cfg,
	}
}

// @Summary Admin login
// @Description Authenticate with email and password, establishing a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials),
			errors.Is(err, commands.ErrAuthenticationFailed):
			// One message for every credential failure; nothing leaks about
			// which part was wrong.
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, commands.ErrAdminInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	adminView, err := h.adminQueries.GetCurrentAdmin(c.Request.Context(), result.AdminID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		Admin:       adminView,
	})
}

// @Summary Refresh session
// @Description Rotate the token pair using the refresh cookie
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "No active session", nil)
		return
	}

	tokenPair, err := h.authCommands.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		cookie.ClearTokenCookies(c, h.cfg.Cookie)
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired session", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		tokenPair.AccessToken, tokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	c.Status(http.StatusNoContent)
}

// @Summary Admin logout
// @Description Clear the session cookies; succeeds even without a session
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Idempotent: clearing cookies that are already gone is a no-op.
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current session
// @Description Return the authenticated admin, or 401 when no session exists
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoSession, "No active session", nil)
		return
	}

	adminView, err := h.adminQueries.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAdminNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "No active session", nil)
		case errors.Is(err, queries.ErrAdminInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.SessionResponse{Admin: adminView})
}
