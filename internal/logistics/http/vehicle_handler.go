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

// VehicleHandler handles HTTP requests for vehicle resources.
type VehicleHandler struct {
	useCase logisticsUseCase.VehicleUseCase
	logger  *slog.Logger
}

// NewVehicleHandler creates a new vehicle handler with required dependencies.
func NewVehicleHandler(useCase logisticsUseCase.VehicleUseCase, logger *slog.Logger) *VehicleHandler {
	return &VehicleHandler{useCase: useCase, logger: logger}
}

// ListHandler returns the vehicles visible to the caller; drivers only see
// their own assignments.
// GET /v1/vehicles
func (h *VehicleHandler) ListHandler(c *gin.Context) {
	vehicles, err := h.useCase.List(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapVehiclesToResponse(vehicles))
}

// ListDeletedHandler returns soft-deleted vehicles.
// GET /v1/vehicles/deleted
func (h *VehicleHandler) ListDeletedHandler(c *gin.Context) {
	vehicles, err := h.useCase.ListDeleted(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapVehiclesToResponse(vehicles))
}

// GetHandler returns one vehicle.
// GET /v1/vehicles/:id
func (h *VehicleHandler) GetHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	vehicle, err := h.useCase.Get(c.Request.Context(), currentPrincipal(c), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapVehicleToResponse(vehicle))
}

// CreateHandler creates a new vehicle.
// POST /v1/vehicles
func (h *VehicleHandler) CreateHandler(c *gin.Context) {
	var req dto.VehicleRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	vehicle := &logisticsDomain.Vehicle{
		CompanyID:     req.CompanyID,
		DriverID:      req.DriverID,
		Type:          req.Type,
		Capacity:      req.Capacity,
		VehicleNumber: req.VehicleNumber,
	}
	if err := h.useCase.Create(c.Request.Context(), currentPrincipal(c), vehicle); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapVehicleToResponse(vehicle))
}

// UpdateHandler modifies a vehicle.
// PUT /v1/vehicles/:id
func (h *VehicleHandler) UpdateHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	var req dto.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	vehicle := &logisticsDomain.Vehicle{
		ID:            id,
		CompanyID:     req.CompanyID,
		DriverID:      req.DriverID,
		Type:          req.Type,
		Capacity:      req.Capacity,
		VehicleNumber: req.VehicleNumber,
	}
	if err := h.useCase.Update(c.Request.Context(), currentPrincipal(c), vehicle); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapVehicleToResponse(vehicle))
}

// DeleteHandler soft-deletes a vehicle.
// DELETE /v1/vehicles/:id
func (h *VehicleHandler) DeleteHandler(c *gin.Context) {
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

// RestoreHandler restores a soft-deleted vehicle.
// POST /v1/vehicles/restore/:id
func (h *VehicleHandler) RestoreHandler(c *gin.Context) {
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
