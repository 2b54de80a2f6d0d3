package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	"github.com/cargoconnect/api/internal/auth/http/dto"
	authUseCase "github.com/cargoconnect/api/internal/auth/usecase"
	apperrors "github.com/cargoconnect/api/internal/errors"
	"github.com/cargoconnect/api/internal/httputil"
	customValidation "github.com/cargoconnect/api/internal/validation"
)

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new authentication handler with required dependencies.
func NewAuthHandler(useCase authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: useCase,
		logger:      logger,
	}
}

// LoginHandler authenticates a user and issues a token pair.
// POST /v1/auth/login - No authentication required.
// Returns 200 OK with the token pair, or 401 for bad credentials.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pair, err := h.authUseCase.Login(c.Request.Context(), &authDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenPairToResponse(pair))
}

// RegisterHandler creates a new account.
// POST /v1/auth/register - No authentication required for User and Driver
// accounts; elevated roles need an authenticated Admin, so the route is
// also mounted behind the authentication middleware and the principal, if
// any, is forwarded as the acting party.
// Returns 201 Created with the new account.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	actor, _ := GetPrincipal(c.Request.Context())

	user, err := h.authUseCase.Register(c.Request.Context(), actor, &authDomain.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     authDomain.ParseRole(req.Role),
		ClientID: req.ClientID,
		DriverID: req.DriverID,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// RefreshHandler rotates a token pair.
// POST /v1/auth/refresh - No authentication middleware; the expired access
// token inside the body is verified cryptographically instead.
// Returns 200 OK with the new pair. The presented refresh token is spent
// whether or not the caller receives the response.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	pair, err := h.authUseCase.Refresh(c.Request.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapTokenPairToResponse(pair))
}

// LogoutHandler revokes the caller's refresh token.
// POST /v1/auth/logout - Authentication required.
// Returns 204 No Content; repeating the call is harmless.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), principal.UserID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// MeHandler returns the authenticated principal.
// GET /v1/auth/me - Authentication required.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	current, err := h.authUseCase.Me(c.Request.Context(), principal.UserID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapPrincipalToResponse(current))
}
