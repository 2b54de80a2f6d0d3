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

// OrderHandler handles HTTP requests for order resources, including the
// cargo attachment sub-resource.
type OrderHandler struct {
	useCase logisticsUseCase.OrderUseCase
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler with required dependencies.
func NewOrderHandler(useCase logisticsUseCase.OrderUseCase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{useCase: useCase, logger: logger}
}

// ListHandler returns the orders visible to the caller; scoped clients see
// only their own.
// GET /v1/orders
func (h *OrderHandler) ListHandler(c *gin.Context) {
	orders, err := h.useCase.List(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapOrdersToResponse(orders))
}

// ListDeletedHandler returns soft-deleted orders.
// GET /v1/orders/deleted
func (h *OrderHandler) ListDeletedHandler(c *gin.Context) {
	orders, err := h.useCase.ListDeleted(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapOrdersToResponse(orders))
}

// GetHandler returns one order.
// GET /v1/orders/:id
func (h *OrderHandler) GetHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	order, err := h.useCase.Get(c.Request.Context(), currentPrincipal(c), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapOrderToResponse(order))
}

// CreateHandler creates a new order.
// POST /v1/orders
func (h *OrderHandler) CreateHandler(c *gin.Context) {
	var req dto.OrderRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	order := &logisticsDomain.Order{
		TransportationID: req.TransportationID,
		ClientID:         req.ClientID,
		Date:             req.Date,
		Status:           req.Status,
		Price:            req.Price,
	}
	if err := h.useCase.Create(c.Request.Context(), currentPrincipal(c), order); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapOrderToResponse(order))
}

// UpdateHandler modifies an order.
// PUT /v1/orders/:id
func (h *OrderHandler) UpdateHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	order := &logisticsDomain.Order{
		ID:               id,
		TransportationID: req.TransportationID,
		ClientID:         req.ClientID,
		Date:             req.Date,
		Status:           req.Status,
		Price:            req.Price,
	}
	if err := h.useCase.Update(c.Request.Context(), currentPrincipal(c), order); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapOrderToResponse(order))
}

// DeleteHandler soft-deletes an order.
// DELETE /v1/orders/:id
func (h *OrderHandler) DeleteHandler(c *gin.Context) {
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

// RestoreHandler restores a soft-deleted order.
// POST /v1/orders/restore/:id
func (h *OrderHandler) RestoreHandler(c *gin.Context) {
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

// AttachCargoHandler links a cargo to an order.
// POST /v1/orders/:id/cargos/:cargoId
func (h *OrderHandler) AttachCargoHandler(c *gin.Context) {
	orderID, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}
	cargoID, ok := pathID(c, "cargoId", h.logger)
	if !ok {
		return
	}

	if err := h.useCase.AttachCargo(c.Request.Context(), currentPrincipal(c), orderID, cargoID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// DetachCargoHandler removes a cargo from an order.
// DELETE /v1/orders/:id/cargos/:cargoId
func (h *OrderHandler) DetachCargoHandler(c *gin.Context) {
	orderID, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}
	cargoID, ok := pathID(c, "cargoId", h.logger)
	if !ok {
		return
	}

	if err := h.useCase.DetachCargo(c.Request.Context(), currentPrincipal(c), orderID, cargoID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}
