package storage_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/JaimeStill/tribunal/pkg/storage"
)

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := storage.Config{ConnectionString: "UseDevelopmentStorage=true"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.ContainerName != "reports" {
		t.Errorf("ContainerName = %q, want reports", cfg.ContainerName)
	}
}

func TestConfigFinalizeEnvOverrides(t *testing.T) {
	t.Setenv("TEST_STORAGE_CONTAINER", "archive")
	t.Setenv("TEST_STORAGE_CONN", "UseDevelopmentStorage=true")

	env := &storage.Env{
		ContainerName:    "TEST_STORAGE_CONTAINER",
		ConnectionString: "TEST_STORAGE_CONN",
	}

	cfg := storage.Config{}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.ContainerName != "archive" {
		t.Errorf("ContainerName = %q, want archive", cfg.ContainerName)
	}
	if cfg.ConnectionString != "UseDevelopmentStorage=true" {
		t.Errorf("ConnectionString = %q", cfg.ConnectionString)
	}
}

func TestConfigValidation(t *testing.T) {
	cfg := storage.Config{}
	err := cfg.Finalize(nil)
	if err == nil {
		t.Fatal("expected error for missing connection string")
	}
	if !strings.Contains(err.Error(), "connection_string required") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConfigMerge(t *testing.T) {
	base := storage.Config{ContainerName: "reports", ConnectionString: "base"}
	base.Merge(&storage.Config{ConnectionString: "overlay"})

	if base.ConnectionString != "overlay" {
		t.Errorf("ConnectionString = %q, want overlay", base.ConnectionString)
	}
	if base.ContainerName != "reports" {
		t.Errorf("ContainerName = %q, want reports", base.ContainerName)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", storage.ErrNotFound, http.StatusNotFound},
		{"empty key", storage.ErrEmptyKey, http.StatusBadRequest},
		{"invalid key", storage.ErrInvalidKey, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storage.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus = %d, want %d", got, tt.want)
			}
		})
	}
}
