package tickets

import (
	"errors"
	"net/http"
)

// Ingestion errors. All are precondition failures surfaced before any
// ticket processing begins.
var (
	ErrMissingColumns    = errors.New("missing required columns")
	ErrEmptyBatch        = errors.New("batch contains no rows")
	ErrUnsupportedFormat = errors.New("unsupported batch format")
)

// MapHTTPStatus maps ingestion errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingColumns) ||
		errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrUnsupportedFormat) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
