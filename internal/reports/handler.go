package reports

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/tribunal/pkg/handlers"
	"github.com/JaimeStill/tribunal/pkg/routes"
)

// Handler provides HTTP endpoints for report analysis and artifact retrieval.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, and upload size cap.
func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "reports"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for report endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/analyze", Handler: h.Analyze},
			{Method: "GET", Pattern: "/{id}/csv", Handler: h.DownloadCSV},
			{Method: "GET", Pattern: "/{id}/json", Handler: h.DownloadJSON},
		},
	}
}

// Analyze accepts a multipart form with a "file" field containing a CSV or
// XLSX ticket batch and returns the generated report.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingFile)
		return
	}
	defer file.Close()

	report, err := h.sys.Analyze(r.Context(), file, header.Filename)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, report)
}

// DownloadCSV streams a report's CSV artifact.
func (h *Handler) DownloadCSV(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, FormatCSV)
}

// DownloadJSON streams a report's JSON artifact.
func (h *Handler) DownloadJSON(w http.ResponseWriter, r *http.Request) {
	h.download(w, r, FormatJSON)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request, format Format) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidReportID)
		return
	}

	reader, err := h.sys.Artifact(r.Context(), id, format)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="ticket_report_%s.%s"`, id, format))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error("artifact stream interrupted", "report_id", id, "format", format, "error", err)
	}
}
