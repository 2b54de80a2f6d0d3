package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cargoconnect/api/internal/httputil"
	logisticsDomain "github.com/cargoconnect/api/internal/logistics/domain"
	"github.com/cargoconnect/api/internal/logistics/http/dto"
	logisticsUseCase "github.com/cargoconnect/api/internal/logistics/usecase"
	customValidation "github.com/cargoconnect/api/internal/validation"
)

// DriverHandler handles HTTP requests for driver resources.
type DriverHandler struct {
	useCase logisticsUseCase.DriverUseCase
	logger  *slog.Logger
}

// NewDriverHandler creates a new driver handler with required dependencies.
func NewDriverHandler(useCase logisticsUseCase.DriverUseCase, logger *slog.Logger) *DriverHandler {
	return &DriverHandler{useCase: useCase, logger: logger}
}

// ListHandler returns the visible drivers.
// GET /v1/drivers
func (h *DriverHandler) ListHandler(c *gin.Context) {
	drivers, err := h.useCase.List(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDriversToResponse(drivers))
}

// ListDeletedHandler returns soft-deleted drivers.
// GET /v1/drivers/deleted
func (h *DriverHandler) ListDeletedHandler(c *gin.Context) {
	drivers, err := h.useCase.ListDeleted(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDriversToResponse(drivers))
}

// GetHandler returns one driver.
// GET /v1/drivers/:id
func (h *DriverHandler) GetHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	driver, err := h.useCase.Get(c.Request.Context(), currentPrincipal(c), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDriverToResponse(driver))
}

// CreateHandler creates a new driver.
// POST /v1/drivers
func (h *DriverHandler) CreateHandler(c *gin.Context) {
	var req dto.DriverRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	driver := &logisticsDomain.Driver{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		LicenseNumber: req.LicenseNumber,
		PhoneNumber:   req.PhoneNumber,
	}
	if err := h.useCase.Create(c.Request.Context(), currentPrincipal(c), driver); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapDriverToResponse(driver))
}

// UpdateHandler modifies a driver.
// PUT /v1/drivers/:id
func (h *DriverHandler) UpdateHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	var req dto.DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	driver := &logisticsDomain.Driver{
		ID:            id,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		LicenseNumber: req.LicenseNumber,
		PhoneNumber:   req.PhoneNumber,
	}
	if err := h.useCase.Update(c.Request.Context(), currentPrincipal(c), driver); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDriverToResponse(driver))
}

// DeleteHandler soft-deletes a driver.
// DELETE /v1/drivers/:id
func (h *DriverHandler) DeleteHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	if err := h.useCase.Delete(c.Request.Context(), currentPrincipal(c), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreHandler restores a soft-deleted driver.
// POST /v1/drivers/restore/:id
func (h *DriverHandler) RestoreHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	if err := h.useCase.Restore(c.Request.Context(), currentPrincipal(c), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}
