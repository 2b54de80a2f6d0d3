package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/cargoconnect/api/internal/auth/usecase"
	apperrors "github.com/cargoconnect/api/internal/errors"
	"github.com/cargoconnect/api/internal/httputil"
)

// AuthenticationMiddleware authenticates requests via a Bearer access token
// in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Validates it through AuthUseCase.Authenticate, which also reloads the
//    account so role and ownership links are current for this request
// 3. Stores the principal in the request context for GetPrincipal()
//
// Error handling:
//   - Missing/malformed Authorization header → 401 Unauthorized
//   - Invalid or expired token, deleted account → 401 Unauthorized
//   - Other errors → 500 Internal Server Error
func AuthenticationMiddleware(
	useCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		accessToken := authHeader[len(bearerPrefix):]
		if accessToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		principal, err := useCase.Authenticate(c.Request.Context(), accessToken)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.Int64("user_id", principal.UserID),
			slog.String("role", string(principal.Role)))

		c.Next()
	}
}

// OptionalAuthenticationMiddleware authenticates the request when an
// Authorization header is present and passes anonymous requests through
// untouched. Used on registration, which is open for self-service accounts
// but needs the acting principal when an admin creates elevated ones.
// A present-but-invalid token is still rejected rather than downgraded to
// anonymous.
func OptionalAuthenticationMiddleware(
	useCase authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	authenticate := AuthenticationMiddleware(useCase, logger)
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		authenticate(c)
	}
}
