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

// CompanyHandler handles HTTP requests for transportation company resources.
type CompanyHandler struct {
	useCase logisticsUseCase.CompanyUseCase
	logger  *slog.Logger
}

// NewCompanyHandler creates a new company handler with required dependencies.
func NewCompanyHandler(useCase logisticsUseCase.CompanyUseCase, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{useCase: useCase, logger: logger}
}

// ListHandler returns the visible companies.
// GET /v1/companies
func (h *CompanyHandler) ListHandler(c *gin.Context) {
	companies, err := h.useCase.List(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCompaniesToResponse(companies))
}

// ListDeletedHandler returns soft-deleted companies.
// GET /v1/companies/deleted
func (h *CompanyHandler) ListDeletedHandler(c *gin.Context) {
	companies, err := h.useCase.ListDeleted(c.Request.Context(), currentPrincipal(c))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCompaniesToResponse(companies))
}

// GetHandler returns one company.
// GET /v1/companies/:id
func (h *CompanyHandler) GetHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	company, err := h.useCase.Get(c.Request.Context(), currentPrincipal(c), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCompanyToResponse(company))
}

// CreateHandler creates a new company.
// POST /v1/companies
func (h *CompanyHandler) CreateHandler(c *gin.Context) {
	var req dto.CompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	company := &logisticsDomain.TransportationCompany{
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.useCase.Create(c.Request.Context(), currentPrincipal(c), company); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapCompanyToResponse(company))
}

// UpdateHandler modifies a company.
// PUT /v1/companies/:id
func (h *CompanyHandler) UpdateHandler(c *gin.Context) {
	id, ok := pathID(c, "id", h.logger)
	if !ok {
		return
	}

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	company := &logisticsDomain.TransportationCompany{
		ID:          id,
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.useCase.Update(c.Request.Context(), currentPrincipal(c), company); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapCompanyToResponse(company))
}

// DeleteHandler soft-deletes a company.
// DELETE /v1/companies/:id
func (h *CompanyHandler) DeleteHandler(c *gin.Context) {
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

// RestoreHandler restores a soft-deleted company.
// POST /v1/companies/restore/:id
func (h *CompanyHandler) RestoreHandler(c *gin.Context) {
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
