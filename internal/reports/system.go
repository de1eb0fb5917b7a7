// Package reports orchestrates batch analysis: ticket aggregation, SLA
// resolution, compliance evaluation, satisfaction judgment, verdict
// synthesis, and report export.
package reports

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// Format selects a report artifact encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv"
	}
	return "application/json"
}

// System defines the public contract for report operations.
type System interface {
	Handler() *Handler

	// Analyze ingests an uploaded ticket batch, runs the full analysis
	// pipeline, stores CSV and JSON artifacts, and returns the report.
	Analyze(ctx context.Context, file io.Reader, filename string) (*Report, error)

	// Artifact returns a stream for a stored report artifact. The caller
	// must close the reader.
	Artifact(ctx context.Context, id uuid.UUID, format Format) (io.ReadCloser, error)
}
