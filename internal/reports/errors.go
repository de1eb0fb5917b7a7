package reports

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/tribunal/internal/tickets"
	"github.com/JaimeStill/tribunal/pkg/storage"
)

var (
	ErrArtifactNotFound = errors.New("report artifact not found")
	ErrInvalidFormat    = errors.New("unsupported artifact format")
	ErrInvalidReportID  = errors.New("report id must be a valid UUID")
	ErrMissingFile      = errors.New("multipart upload requires a file field")
)

// MapHTTPStatus maps report errors, including wrapped ingestion and storage
// errors, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrArtifactNotFound), errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidFormat),
		errors.Is(err, ErrInvalidReportID),
		errors.Is(err, ErrMissingFile):
		return http.StatusBadRequest
	case errors.Is(err, tickets.ErrMissingColumns),
		errors.Is(err, tickets.ErrEmptyBatch),
		errors.Is(err, tickets.ErrUnsupportedFormat):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
