package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/tribunal/internal/config"
)

func TestServerConfigFinalizeDefaults(t *testing.T) {
	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Host != "0.0.0.0" || cfg.Port != 8080 {
		t.Errorf("addr = %s, want 0.0.0.0:8080", cfg.Addr())
	}
	if cfg.WriteTimeoutDuration() != 15*time.Minute {
		t.Errorf("WriteTimeout = %v, want 15m", cfg.WriteTimeoutDuration())
	}
}

func TestServerConfigEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServerHost, "127.0.0.1")
	t.Setenv(config.EnvServerPort, "9090")

	cfg := config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr = %q, want 127.0.0.1:9090", cfg.Addr())
	}
}

func TestServerConfigValidation(t *testing.T) {
	cfg := config.ServerConfig{Port: 70000}
	err := cfg.Finalize()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
	if !strings.Contains(err.Error(), "invalid port") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAPIConfigFinalizeDefaults(t *testing.T) {
	cfg := config.APIConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("BasePath = %q, want /api", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 50MB", cfg.MaxUploadSizeBytes())
	}
	if cfg.Pagination.DefaultPageSize != 20 {
		t.Errorf("Pagination.DefaultPageSize = %d, want 20", cfg.Pagination.DefaultPageSize)
	}
}

func TestAPIConfigMaxUploadSizeFallback(t *testing.T) {
	cfg := config.APIConfig{MaxUploadSize: "garbage"}
	if got := cfg.MaxUploadSizeBytes(); got != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, want 50MB fallback", got)
	}
}

func TestReportsConfigFinalizeDefaults(t *testing.T) {
	cfg := config.ReportsConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultSLADays != 2 {
		t.Errorf("DefaultSLADays = %d, want 2", cfg.DefaultSLADays)
	}
	if cfg.JudgeWorkers != 1 {
		t.Errorf("JudgeWorkers = %d, want 1", cfg.JudgeWorkers)
	}
	if cfg.JudgeTimeoutDuration() != 2*time.Minute {
		t.Errorf("JudgeTimeout = %v, want 2m", cfg.JudgeTimeoutDuration())
	}
}

func TestReportsConfigEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvReportsDefaultSLADays, "5")
	t.Setenv(config.EnvReportsJudgeWorkers, "8")
	t.Setenv(config.EnvReportsJudgeTimeout, "30s")

	cfg := config.ReportsConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("finalize failed: %v", err)
	}

	if cfg.DefaultSLADays != 5 || cfg.JudgeWorkers != 8 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.JudgeTimeoutDuration() != 30*time.Second {
		t.Errorf("JudgeTimeout = %v, want 30s", cfg.JudgeTimeoutDuration())
	}
}

func TestReportsConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ReportsConfig
		wantErr string
	}{
		{"negative sla days", config.ReportsConfig{DefaultSLADays: -1}, "invalid default_sla_days"},
		{"negative workers", config.ReportsConfig{JudgeWorkers: -2}, "invalid judge_workers"},
		{"bad timeout", config.ReportsConfig{JudgeTimeout: "soon"}, "invalid judge_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestReportsConfigMerge(t *testing.T) {
	base := config.ReportsConfig{DefaultSLADays: 2, JudgeWorkers: 1, JudgeTimeout: "2m"}
	base.Merge(&config.ReportsConfig{JudgeWorkers: 4})

	if base.JudgeWorkers != 4 {
		t.Errorf("JudgeWorkers = %d, want 4", base.JudgeWorkers)
	}
	if base.DefaultSLADays != 2 || base.JudgeTimeout != "2m" {
		t.Error("unset overlay fields should not overwrite base values")
	}
}
