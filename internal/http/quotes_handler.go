package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/dto"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/i18n"
	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/service"
)

// QuotesHandler provides HTTP handlers for quote routes.
type QuotesHandler struct {
	quotes  service.QuotesService
	handler *Handler
}

// NewQuotesHandler creates a new QuotesHandler instance. The optimize
// handler is shared for input resolution so quotes accept exactly the same
// request shape as /optimize.
func NewQuotesHandler(quotes service.QuotesService, handler *Handler) *QuotesHandler {
	return &QuotesHandler{
		quotes:  quotes,
		handler: handler,
	}
}

// CreateQuote handles POST /api/v1/quotes requests.
//
// @Summary      Create a quote
// @Description  Runs the optimization and persists the outcome as a quote with a short reference like Q-3F2A9C1B. A plan that places nothing still produces a quote; its summary records the failure. Supports idempotency via Idempotency-Key header.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CreateQuoteRequest true "Products, container, pallet, and note"
// @Success      201 {object} dto.SuccessResponse{data=dto.QuoteCreatedResponse} "Stored quote plus full result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or unknown preset"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/quotes [post]
func (h *QuotesHandler) CreateQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		builder.ErrorWithDetails(http.StatusBadRequest, validationKey(err), validationDetails(err), err)
		return
	}

	requests, container, pallet, ok := h.handler.resolveInputs(c, builder, &req.OptimizeRequest)
	if !ok {
		return
	}

	quote, result, err := h.quotes.CreateQuote(c.Request.Context(), requests, container, pallet, req.Note)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	auditLog(c, "create_quote", "Quote created", map[string]interface{}{
		"reference":     quote.Reference,
		"success":       quote.Summary.Success,
		"total_pallets": quote.Summary.TotalPallets,
	})

	builder.SuccessCreated(dto.QuoteCreatedResponse{
		Quote:  *quote,
		Result: *result,
	})
}

// GetQuote handles GET /api/v1/quotes/:id requests.
//
// @Summary      Get a quote
// @Description  Returns a stored quote by its reference, for example Q-3F2A9C1B.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        id path string true "Quote reference"
// @Success      200 {object} dto.SuccessResponse{data=model.Quote} "Stored quote"
// @Failure      404 {object} dto.ErrorResponse "Not found - unknown quote reference"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/quotes/{id} [get]
func (h *QuotesHandler) GetQuote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quote, err := h.quotes.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if quote == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(quote)
}

// ListQuotes handles GET /api/v1/quotes requests.
//
// @Summary      List quotes
// @Description  Returns a page of stored quotes, newest first.
// @Tags         Quotes
// @Accept       json
// @Produce      json
// @Param        limit query int false "Page size" default(20)
// @Param        skip query int false "Offset into the result set" default(0)
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteListResponse} "Stored quotes page"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid query parameters"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Failure      503 {object} dto.ErrorResponse "Service unavailable - requires a database"
// @Router       /api/v1/quotes [get]
func (h *QuotesHandler) ListQuotes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.ListQuotesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	stored, err := h.quotes.ListQuotes(c.Request.Context(), query.Limit, query.Skip)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyDatabaseDisabled, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	quotes := make([]model.Quote, 0, len(stored))
	for _, q := range stored {
		quotes = append(quotes, *q)
	}

	builder.SuccessOK(dto.QuoteListResponse{
		Quotes: quotes,
		Count:  len(quotes),
	})
}
