package dto

import (
	"net/http"
	"time"

	"github.com/Zchasse63/pallet-puzzle-optimizer-sub001/internal/domain/model"
)

const (
	// ErrCodeBadRequest indicates a malformed or invalid request.
	ErrCodeBadRequest = "bad_request"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimited indicates the rate limit was exceeded.
	ErrCodeRateLimited = "rate_limited"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnavailable indicates a required backing service is unavailable.
	ErrCodeUnavailable = "service_unavailable"
	// ErrCodeTimeout indicates the request deadline was exceeded.
	ErrCodeTimeout = "request_timeout"
	// ErrCodeConflict indicates a conflict with the current state.
	ErrCodeConflict = "conflict"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response payload
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-03-02T10:00:00Z"`
} // @name SuccessResponse

// ErrorBody is the machine-readable core of an error response.
// @Description Error code, human message, and optional field details
type ErrorBody struct {
	// Code is a stable machine-readable error code
	Code string `json:"code" example:"bad_request"`
	// Message is a human-readable description
	Message string `json:"message,omitempty" example:"products: at least one product request is required"`
	// Details contains optional per-field error details
	Details map[string]string `json:"details,omitempty"`
} // @name ErrorBody

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2026-03-02T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Error.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeBadRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimited
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// ContainerPresetsResponse is the payload of the container preset endpoints.
// @Description Active container presets
type ContainerPresetsResponse struct {
	Containers []model.ContainerPreset `json:"containers"`
} // @name ContainerPresetsResponse

// PalletPresetsResponse is the payload of the pallet preset endpoints.
// @Description Active pallet presets
type PalletPresetsResponse struct {
	Pallets []model.PalletPreset `json:"pallets"`
} // @name PalletPresetsResponse

// ProductListResponse is the payload of the product list endpoint.
// @Description Catalog products page
type ProductListResponse struct {
	Products []model.Product `json:"products"`
	Count    int             `json:"count" example:"2"`
} // @name ProductListResponse

// QuoteCreatedResponse pairs a persisted quote with the full result the
// caller can render immediately.
// @Description Persisted quote plus the optimization result behind it
type QuoteCreatedResponse struct {
	Quote  model.Quote              `json:"quote"`
	Result model.OptimizationResult `json:"result"`
} // @name QuoteCreatedResponse

// QuoteListResponse is the payload of the quote list endpoint.
// @Description Stored quotes page, newest first
type QuoteListResponse struct {
	Quotes []model.Quote `json:"quotes"`
	Count  int           `json:"count" example:"1"`
} // @name QuoteListResponse
