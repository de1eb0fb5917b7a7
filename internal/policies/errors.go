package policies

import (
	"errors"
	"net/http"
)

// Domain errors for policy operations.
var (
	ErrNotFound        = errors.New("policy not found")
	ErrDuplicate       = errors.New("policy already exists")
	ErrInvalidPolicy   = errors.New("policy category is required")
	ErrInvalidPosition = errors.New("policy position must be positive")
)

// MapHTTPStatus maps policy domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidPolicy) || errors.Is(err, ErrInvalidPosition) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
