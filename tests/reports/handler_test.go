package reports_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/JaimeStill/tribunal/internal/reports"
	"github.com/JaimeStill/tribunal/pkg/routes"
)

func newHandlerMux(t *testing.T) (*http.ServeMux, reports.System) {
	t.Helper()

	sys, _ := newTestService(newMemoryStorage(), 1)
	mux := http.NewServeMux()
	routes.Register(mux, reports.NewHandler(sys, testLogger(), 1<<20).Routes())

	return mux, sys
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	return &body, writer.FormDataContentType()
}

func TestAnalyzeEndpoint(t *testing.T) {
	mux, _ := newHandlerMux(t)

	body, contentType := multipartUpload(t, "batch.csv", serviceCSV)
	req := httptest.NewRequest("POST", "/reports/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var report reports.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if len(report.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(report.Rows))
	}
	if report.ID == uuid.Nil {
		t.Error("report ID should be assigned")
	}
}

func TestAnalyzeEndpointMissingFile(t *testing.T) {
	mux, _ := newHandlerMux(t)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	writer.WriteField("notes", "no file here")
	writer.Close()

	req := httptest.NewRequest("POST", "/reports/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeEndpointBadBatch(t *testing.T) {
	mux, _ := newHandlerMux(t)

	body, contentType := multipartUpload(t, "batch.csv", "a,b\n1,2\n")
	req := httptest.NewRequest("POST", "/reports/analyze", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing required columns") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDownloadEndpoints(t *testing.T) {
	mux, sys := newHandlerMux(t)

	report, err := sys.Analyze(context.Background(), strings.NewReader(serviceCSV), "batch.csv")
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	t.Run("csv artifact", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/reports/"+report.ID.String()+"/csv", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("Content-Type = %q, want text/csv", ct)
		}
		if !strings.Contains(rec.Body.String(), "ticket_id") {
			t.Error("csv body missing header")
		}
	})

	t.Run("json artifact", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/reports/"+report.ID.String()+"/json", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
	})

	t.Run("unknown report id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/reports/"+uuid.NewString()+"/csv", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("malformed report id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/reports/not-a-uuid/csv", nil))

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), reports.ErrInvalidReportID.Error()) {
			t.Errorf("body = %q, want the invalid report id message", rec.Body.String())
		}
	})
}
