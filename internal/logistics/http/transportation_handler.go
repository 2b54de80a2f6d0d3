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

// TransportationHandler handles HTTP requests for transportation resources,
// including the company association sub-resource.
type TransportationHandler struct {
	useCase logisticsUseCase.TransportationUseCase
	logger  *slog.Logger
}

// NewTransportationHandler creates a new transportation handler with
// required dependencies.
func NewTransportationHandler(useCase logisticsUseCase.TransportationUseCase, logger *slog.Logger) *TransportationHandler {
	return &TransportationHandler{useCase: useCase, logger: logger}
}

// ListHandler returns the transportations visible to the caller; drivers
// see only hauls of their assigned vehicles.
// GET /v1/transportations
func (h *TransportationHandler) ListHandler(c *gin.Context) {
	transportations, err := h.useCase.List(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapTransportationsToResponse(transportations))
}

// ListDeletedHandler returns soft-deleted transportations.
// GET /v1/transportations/deleted
func (h *TransportationHandler) ListDeletedHandler(c *gin.Context) {
	transportations, err := h.useCase.ListDeleted(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapTransportationsToResponse(transportations))
}

// GetHandler returns one transportation.
// GET /v1/transportations/:id
func (h *TransportationHandler) GetHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	transportation, err := h.useCase.Get(c.Request.Context(), currentPrincipal(c), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapTransportationToResponse(transportation))
}

// CreateHandler creates a new transportation.
// POST /v1/transportations
func (h *TransportationHandler) CreateHandler(c *gin.Context) {
	var req dto.TransportationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	transportation := &logisticsDomain.Transportation{
		CargoID:    req.CargoID,
		VehicleID:  req.VehicleID,
		StartPoint: req.StartPoint,
		EndPoint:   req.EndPoint,
	}
	if err := h.useCase.Create(c.Request.Context(), currentPrincipal(c), transportation); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapTransportationToResponse(transportation))
}

// UpdateHandler modifies a transportation.
// PUT /v1/transportations/:id
func (h *TransportationHandler) UpdateHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	var req dto.TransportationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	transportation := &logisticsDomain.Transportation{
		ID:         id,
		CargoID:    req.CargoID,
		VehicleID:  req.VehicleID,
		StartPoint: req.StartPoint,
		EndPoint:   req.EndPoint,
	}
	if err := h.useCase.Update(c.Request.Context(), currentPrincipal(c), transportation); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapTransportationToResponse(transportation))
}

// DeleteHandler soft-deletes a transportation.
// DELETE /v1/transportations/:id
func (h *TransportationHandler) DeleteHandler(c *gin.Context) {
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

// RestoreHandler restores a soft-deleted transportation.
// POST /v1/transportations/restore/:id
func (h *TransportationHandler) RestoreHandler(c *gin.Context) {
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

// LinkCompanyHandler associates a company with a transportation.
// POST /v1/transportations/:id/companies/:companyId
func (h *TransportationHandler) LinkCompanyHandler(c *gin.Context) {
	transportationID, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}
	companyID, ok := pathID(c, "companyId", h.logger)
	if !ok {
		return
	}

	if err := h.useCase.LinkCompany(c.Request.Context(), currentPrincipal(c), transportationID, companyID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// UnlinkCompanyHandler removes a company association from a transportation.
// DELETE /v1/transportations/:id/companies/:companyId
func (h *TransportationHandler) UnlinkCompanyHandler(c *gin.Context) {
	transportationID, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}
	companyID, ok := pathID(c, "companyId", h.logger)
	if !ok {
		return
	}

	if err := h.useCase.UnlinkCompany(c.Request.Context(), currentPrincipal(c), transportationID, companyID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}
