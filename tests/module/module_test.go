package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/tribunal/pkg/module"
)

func echoPathMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /reports/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(r.URL.Path))
	})
	return mux
}

func TestModuleStripsPrefix(t *testing.T) {
	m := module.New("/api", echoPathMux())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reports/42", nil)
	m.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != "/reports/42" {
		t.Errorf("inner path = %q, want /reports/42", got)
	}
}

func TestModulePrefixValidation(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"missing slash", "api"},
		{"multi-level", "/api/v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) should panic", tt.prefix)
				}
			}()
			module.New(tt.prefix, http.NewServeMux())
		})
	}
}

func TestModuleMiddlewareApplies(t *testing.T) {
	m := module.New("/api", echoPathMux())
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Test", "applied")
			next.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/reports/1", nil)
	m.Serve(rec, req)

	if rec.Header().Get("X-Test") != "applied" {
		t.Error("module middleware did not run")
	}
}

func TestRouterDispatch(t *testing.T) {
	router := module.NewRouter()
	router.Mount(module.New("/api", echoPathMux()))
	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	t.Run("mounted module", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/reports/7", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "/reports/7" {
			t.Errorf("code = %d body = %q", rec.Code, rec.Body.String())
		}
	})

	t.Run("native fallback", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
		if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
			t.Errorf("code = %d body = %q", rec.Code, rec.Body.String())
		}
	})

	t.Run("unmatched path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/missing", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("code = %d, want 404", rec.Code)
		}
	})

	t.Run("trailing slash normalized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/reports/7/", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("code = %d, want 200", rec.Code)
		}
	})
}
