package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/dto"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/i18n"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/metrics"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/middleware"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// Handler provides HTTP handlers for the optimization routes.
type Handler struct {
	optimizer service.Optimizer
	catalog   service.CatalogService
	presets   service.PresetsService
}

// NewHandler creates a new Handler instance.
func NewHandler(optimizer service.Optimizer, catalog service.CatalogService, presets service.PresetsService) *Handler {
	return &Handler{
		optimizer: optimizer,
		catalog:   catalog,
		presets:   presets,
	}
}

// auditLog emits an async audit entry when the router installed a logging
// service on the context.
func auditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if loggingService, exists := c.Get("logging_service"); exists {
		if ls, ok := loggingService.(service.LoggingService); ok {
			middleware.AuditLog(ls, c, actionType, message, fields)
		}
	}
}

// validationDetails maps a request validation error to per-field details.
func validationDetails(err error) map[string]string {
	var ve *dto.ValidationError
	if errors.As(err, &ve) {
		return map[string]string{ve.Field: ve.Message}
	}
	return nil
}

// validationKey picks the translation key for a request validation error.
func validationKey(err error) string {
	if errors.Is(err, dto.ErrNoProducts) {
		return i18n.ErrKeyValidationProducts
	}
	return i18n.ErrKeyInvalidRequest
}

// resolveInputs expands catalog references and preset names in an optimize
// request into concrete product, container and pallet specifications. On
// failure it writes the error response and returns ok=false.
func (h *Handler) resolveInputs(c *gin.Context, builder *ResponseBuilder, req *dto.OptimizeRequest) ([]model.ProductRequest, model.Container, model.PalletTemplate, bool) {
	var (
		container model.Container
		pallet    model.PalletTemplate
	)

	requests, err := h.catalog.ResolveRequests(c.Request.Context(), req.Products)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProduct):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownProduct, err)
		case errors.Is(err, service.ErrRepositoryNotConfigured):
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return nil, container, pallet, false
	}

	if req.ContainerPreset != "" {
		resolved, err := h.presets.ResolveContainer(c.Request.Context(), req.ContainerPreset)
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return nil, container, pallet, false
		}
		if resolved == nil {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyUnknownPreset,
				map[string]string{"container_preset": req.ContainerPreset}, nil)
			return nil, container, pallet, false
		}
		container = *resolved
	} else {
		container = *req.Container
	}

	if req.PalletPreset != "" {
		resolved, err := h.presets.ResolvePallet(c.Request.Context(), req.PalletPreset)
		if err != nil {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
			return nil, container, pallet, false
		}
		if resolved == nil {
			builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyUnknownPreset,
				map[string]string{"pallet_preset": req.PalletPreset}, nil)
			return nil, container, pallet, false
		}
		pallet = *resolved
	} else {
		pallet = *req.Pallet
	}

	return requests, container, pallet, true
}

// bindOptimizeRequest binds and validates the shared optimize request body.
func bindOptimizeRequest(c *gin.Context, builder *ResponseBuilder) (*dto.OptimizeRequest, bool) {
	var req dto.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return nil, false
	}

	if err := req.Validate(); err != nil {
		metrics.RecordOptimization(0, "validation_error")
		builder.ErrorWithDetails(http.StatusBadRequest, validationKey(err), validationDetails(err), err)
		return nil, false
	}

	return &req, true
}

// runOptimization executes the engine call with metrics instrumentation.
func (h *Handler) runOptimization(requests []model.ProductRequest, container model.Container, pallet model.PalletTemplate) model.OptimizationResult {
	start := time.Now()
	result := h.optimizer.Optimize(requests, container, pallet)
	duration := time.Since(start)

	if result.Success {
		metrics.RecordOptimization(duration, "success")
		metrics.RecordOptimizationOutcome(len(result.Arrangements), result.Utilization)
	} else {
		metrics.RecordOptimization(duration, "failed")
	}

	return result
}

// Optimize handles POST /api/v1/optimize requests.
//
// @Summary      Compute a packing plan
// @Description  Places the requested product quantities onto pallets and pallets into the container, returning the full arrangement list, unplaced remainders, and utilization figures. Products may carry inline dimensions or reference catalog entries by id or SKU; the container and pallet are given inline or as preset names. Supports idempotency via Idempotency-Key header.
// @Tags         Optimization
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.OptimizeRequest true "Products, container, and pallet"
// @Success      200 {object} dto.SuccessResponse{data=model.OptimizationResult} "Packing outcome"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown preset"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - catalog requires a database"
// @Router       /api/v1/optimize [post]
func (h *Handler) Optimize(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindOptimizeRequest(c, builder)
	if !ok {
		return
	}

	requests, container, pallet, ok := h.resolveInputs(c, builder, req)
	if !ok {
		return
	}

	auditLog(c, "optimize", "Optimization requested", map[string]interface{}{
		"product_count":    len(requests),
		"container_preset": req.ContainerPreset,
		"pallet_preset":    req.PalletPreset,
	})

	result := h.runOptimization(requests, container, pallet)
	builder.SuccessOK(result)
}

// OptimizeSummary handles POST /api/v1/optimize/summary requests.
//
// @Summary      Compute a packing summary
// @Description  Runs the same optimization as /optimize but returns only the condensed summary: pallet count, placed and remaining units, and utilization. Intended for dashboard tiles that do not render arrangements.
// @Tags         Optimization
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.OptimizeRequest true "Products, container, and pallet"
// @Success      200 {object} dto.SuccessResponse{data=model.OptimizationSummary} "Condensed packing outcome"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown preset"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - catalog requires a database"
// @Router       /api/v1/optimize/summary [post]
func (h *Handler) OptimizeSummary(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, ok := bindOptimizeRequest(c, builder)
	if !ok {
		return
	}

	requests, container, pallet, ok := h.resolveInputs(c, builder, req)
	if !ok {
		return
	}

	auditLog(c, "optimize", "Optimization summary requested", map[string]interface{}{
		"product_count":    len(requests),
		"container_preset": req.ContainerPreset,
		"pallet_preset":    req.PalletPreset,
	})

	result := h.runOptimization(requests, container, pallet)
	builder.SuccessOK(h.optimizer.PrepareSummary(result))
}

// ValidateProducts handles POST /api/v1/products/validate requests.
//
// @Summary      Validate product requests
// @Description  Checks each product request for usable dimensions, weight, quantity, and unit without running the optimizer. Catalog references are resolved first, so a reference to a missing product fails the same way it would on /optimize.
// @Tags         Optimization
// @Accept       json
// @Produce      json
// @Param        request body dto.ValidateProductsRequest true "Products to check"
// @Success      200 {object} dto.SuccessResponse{data=model.ValidationReport} "Validation verdict"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - catalog requires a database"
// @Router       /api/v1/products/validate [post]
func (h *Handler) ValidateProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ValidateProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, validationKey(err), validationDetails(err), err)
		return
	}

	requests, err := h.catalog.ResolveRequests(c.Request.Context(), req.Products)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownProduct):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyUnknownProduct, err)
		case errors.Is(err, service.ErrRepositoryNotConfigured):
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(h.optimizer.ValidateProducts(requests))
}
