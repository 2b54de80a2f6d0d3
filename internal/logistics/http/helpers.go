// Package http provides gin HTTP handlers for the logistics resources.
// Authorization happens inside the use cases; handlers only bind, validate
// and translate errors, passing the principal through (nil for anonymous
// callers, which the engine rejects).
package http

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	authDomain "github.com/cargoconnect/api/internal/auth/domain"
	authHTTP "github.com/cargoconnect/api/internal/auth/http"
	apperrors "github.com/cargoconnect/api/internal/errors"
	"github.com/cargoconnect/api/internal/httputil"
)

func currentPrincipal(c *gin.Context) *authDomain.Principal {
	principal, _ := authHTTP.GetPrincipal(c.Request.Context())
	return principal
}

func pathID(c *gin.Context, name string, logger *slog.Logger) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		httputil.HandleBadRequestGin(c, apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid %s", name), logger)
		return 0, false
	}
	return id, true
}
