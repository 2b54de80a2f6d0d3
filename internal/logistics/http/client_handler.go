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

// ClientHandler handles HTTP requests for client resources.
type ClientHandler struct {
	useCase logisticsUseCase.ClientUseCase
	logger  *slog.Logger
}

// NewClientHandler creates a new client handler with required dependencies.
func NewClientHandler(useCase logisticsUseCase.ClientUseCase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{useCase: useCase, logger: logger}
}

// ListHandler returns the visible clients.
// GET /v1/clients
func (h *ClientHandler) ListHandler(c *gin.Context) {
	clients, err := h.useCase.List(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapClientsToResponse(clients))
}

// ListDeletedHandler returns soft-deleted clients.
// GET /v1/clients/deleted
func (h *ClientHandler) ListDeletedHandler(c *gin.Context) {
	clients, err := h.useCase.ListDeleted(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapClientsToResponse(clients))
}

// GetHandler returns one client.
// GET /v1/clients/:id
func (h *ClientHandler) GetHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	client, err := h.useCase.Get(c.Request.Context(), currentPrincipal(c), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// CreateHandler creates a new client.
// POST /v1/clients
func (h *ClientHandler) CreateHandler(c *gin.Context) {
	var req dto.ClientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	client := &logisticsDomain.Client{
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := h.useCase.Create(c.Request.Context(), currentPrincipal(c), client); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapClientToResponse(client))
}

// UpdateHandler modifies a client.
// PUT /v1/clients/:id
func (h *ClientHandler) UpdateHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	client := &logisticsDomain.Client{
		ID:      id,
		Name:    req.Name,
		Surname: req.Surname,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := h.useCase.Update(c.Request.Context(), currentPrincipal(c), client); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// DeleteHandler soft-deletes a client.
// DELETE /v1/clients/:id
func (h *ClientHandler) DeleteHandler(c *gin.Context) {
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

// RestoreHandler restores a soft-deleted client.
// POST /v1/clients/restore/:id
func (h *ClientHandler) RestoreHandler(c *gin.Context) {
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
