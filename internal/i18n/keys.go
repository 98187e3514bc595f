// Package i18n provides internationalization support for the optimizer service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationProducts indicates invalid product requests.
	ErrKeyValidationProducts = "error.validation.products"
	// ErrKeyUnknownPreset indicates a preset reference that resolves to nothing.
	ErrKeyUnknownPreset = "error.unknown_preset"
	// ErrKeyUnknownProduct indicates a catalog reference that resolves to nothing.
	ErrKeyUnknownProduct = "error.unknown_product"
	// ErrKeyDuplicateSKU indicates a catalog SKU collision.
	ErrKeyDuplicateSKU = "error.duplicate_sku"
	// ErrKeyDatabaseDisabled indicates an operation that needs the database
	// while the service runs without one.
	ErrKeyDatabaseDisabled = "error.database_disabled"
)

// Success message translation keys.
const (
	// SuccessKeyOptimizationCompleted indicates a completed optimization.
	SuccessKeyOptimizationCompleted = "success.optimization_completed"
)
