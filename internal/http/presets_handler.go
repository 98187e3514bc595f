package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/dto"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/i18n"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/repository"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// PresetsHandler provides HTTP handlers for container and pallet preset
// routes.
type PresetsHandler struct {
	presets   service.PresetsService
	optimizer service.Optimizer
}

// NewPresetsHandler creates a new PresetsHandler instance.
func NewPresetsHandler(presets service.PresetsService, optimizer service.Optimizer) *PresetsHandler {
	return &PresetsHandler{
		presets:   presets,
		optimizer: optimizer,
	}
}

// GetContainerPresets handles GET /api/v1/presets/containers requests.
//
// @Summary      Get active container presets
// @Description  Returns the currently active container presets. Falls back to the compiled-in defaults when no database is configured or no set has been stored yet.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.ContainerPresetsResponse} "Active container presets"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/presets/containers [get]
func (h *PresetsHandler) GetContainerPresets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	containers, err := h.presets.GetContainers(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.ContainerPresetsResponse{Containers: containers})
}

// GetPalletPresets handles GET /api/v1/presets/pallets requests.
//
// @Summary      Get active pallet presets
// @Description  Returns the currently active pallet presets. Falls back to the compiled-in defaults when no database is configured or no set has been stored yet.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.PalletPresetsResponse} "Active pallet presets"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/v1/presets/pallets [get]
func (h *PresetsHandler) GetPalletPresets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	pallets, err := h.presets.GetPallets(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.PalletPresetsResponse{Pallets: pallets})
}

// ReplaceContainerPresets handles PUT /api/v1/presets/containers requests.
//
// @Summary      Replace container presets
// @Description  Installs a new active container preset set as a new version, deactivating the previous one, and clears the optimizer result cache so stale preset geometry is never served.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Param        request body dto.ReplaceContainerPresetsRequest true "New container preset set"
// @Success      200 {object} dto.SuccessResponse{data=dto.ContainerPresetsResponse} "Installed container presets"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing or duplicate preset names"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/presets/containers [put]
func (h *PresetsHandler) ReplaceContainerPresets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ReplaceContainerPresetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, validationDetails(err), err)
		return
	}

	config, err := h.presets.ReplaceContainers(c.Request.Context(), req.Containers)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	// Stored preset geometry feeds cached results; drop them.
	if h.optimizer != nil {
		h.optimizer.InvalidateCache()
	}

	auditLog(c, "replace_presets", "Container presets replaced", map[string]interface{}{
		"kind":    repository.PresetKindContainers,
		"count":   len(req.Containers),
		"version": config.Version,
	})

	builder.SuccessOK(dto.ContainerPresetsResponse{Containers: config.Containers})
}

// ReplacePalletPresets handles PUT /api/v1/presets/pallets requests.
//
// @Summary      Replace pallet presets
// @Description  Installs a new active pallet preset set as a new version, deactivating the previous one, and clears the optimizer result cache so stale preset geometry is never served.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Param        request body dto.ReplacePalletPresetsRequest true "New pallet preset set"
// @Success      200 {object} dto.SuccessResponse{data=dto.PalletPresetsResponse} "Installed pallet presets"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing or duplicate preset names"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/presets/pallets [put]
func (h *PresetsHandler) ReplacePalletPresets(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ReplacePalletPresetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, validationDetails(err), err)
		return
	}

	config, err := h.presets.ReplacePallets(c.Request.Context(), req.Pallets)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.optimizer != nil {
		h.optimizer.InvalidateCache()
	}

	auditLog(c, "replace_presets", "Pallet presets replaced", map[string]interface{}{
		"kind":    repository.PresetKindPallets,
		"count":   len(req.Pallets),
		"version": config.Version,
	})

	builder.SuccessOK(dto.PalletPresetsResponse{Pallets: config.Pallets})
}

// ContainerPresetsHistory handles GET /api/v1/presets/containers/history requests.
//
// @Summary      List container preset history
// @Description  Returns stored container preset set versions, newest first.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Container preset versions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/presets/containers/history [get]
func (h *PresetsHandler) ContainerPresetsHistory(c *gin.Context) {
	h.history(c, repository.PresetKindContainers)
}

// PalletPresetsHistory handles GET /api/v1/presets/pallets/history requests.
//
// @Summary      List pallet preset history
// @Description  Returns stored pallet preset set versions, newest first.
// @Tags         Presets
// @Accept       json
// @Produce      json
// @Param        limit query int false "Limit number of results"
// @Success      200 {object} dto.SuccessResponse "Pallet preset versions"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/presets/pallets/history [get]
func (h *PresetsHandler) PalletPresetsHistory(c *gin.Context) {
	h.history(c, repository.PresetKindPallets)
}

func (h *PresetsHandler) history(c *gin.Context, kind string) {
	builder := NewResponseBuilder(c)

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	configs, err := h.presets.History(c.Request.Context(), kind, limit)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(configs)
}
