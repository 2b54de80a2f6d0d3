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

// CargoHandler handles HTTP requests for cargo resources.
type CargoHandler struct {
	useCase logisticsUseCase.CargoUseCase
	logger  *slog.Logger
}

// NewCargoHandler creates a new cargo handler with required dependencies.
func NewCargoHandler(useCase logisticsUseCase.CargoUseCase, logger *slog.Logger) *CargoHandler {
	return &CargoHandler{useCase: useCase, logger: logger}
}

// ListHandler returns the cargos visible to the caller; scoped clients see
// only cargos attached to their own orders.
// GET /v1/cargos
func (h *CargoHandler) ListHandler(c *gin.Context) {
	cargos, err := h.useCase.List(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCargosToResponse(cargos))
}

// ListDeletedHandler returns soft-deleted cargos.
// GET /v1/cargos/deleted
func (h *CargoHandler) ListDeletedHandler(c *gin.Context) {
	cargos, err := h.useCase.ListDeleted(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCargosToResponse(cargos))
}

// GetHandler returns one cargo.
// GET /v1/cargos/:id
func (h *CargoHandler) GetHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	cargo, err := h.useCase.Get(c.Request.Context(), currentPrincipal(c), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCargoToResponse(cargo))
}

// CreateHandler creates a new cargo.
// POST /v1/cargos
func (h *CargoHandler) CreateHandler(c *gin.Context) {
	var req dto.CargoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	cargo := &logisticsDomain.Cargo{
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		Description: req.Description,
	}
	if err := h.useCase.Create(c.Request.Context(), currentPrincipal(c), cargo); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapCargoToResponse(cargo))
}

// UpdateHandler modifies a cargo.
// PUT /v1/cargos/:id
func (h *CargoHandler) UpdateHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	var req dto.CargoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	cargo := &logisticsDomain.Cargo{
		ID:          id,
		Weight:      req.Weight,
		Dimensions:  req.Dimensions,
		Description: req.Description,
	}
	if err := h.useCase.Update(c.Request.Context(), currentPrincipal(c), cargo); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCargoToResponse(cargo))
}

// DeleteHandler soft-deletes a cargo.
// DELETE /v1/cargos/:id
func (h *CargoHandler) DeleteHandler(c *gin.Context) {
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

// RestoreHandler restores a soft-deleted cargo.
// POST /v1/cargos/restore/:id
func (h *CargoHandler) RestoreHandler(c *gin.Context) {
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
