package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvReportsDefaultSLADays = "TRIBUNAL_REPORTS_DEFAULT_SLA_DAYS"
	EnvReportsJudgeWorkers   = "TRIBUNAL_REPORTS_JUDGE_WORKERS"
	EnvReportsJudgeTimeout   = "TRIBUNAL_REPORTS_JUDGE_TIMEOUT"
)

// ReportsConfig holds report evaluation settings.
type ReportsConfig struct {
	// DefaultSLADays applies to tickets no policy matches.
	DefaultSLADays int `toml:"default_sla_days"`
	// JudgeWorkers bounds concurrent model calls during a batch analysis.
	JudgeWorkers int `toml:"judge_workers"`
	// JudgeTimeout caps each individual model call. Empty disables the cap.
	JudgeTimeout string `toml:"judge_timeout"`
}

// JudgeTimeoutDuration returns JudgeTimeout as a time.Duration.
func (c *ReportsConfig) JudgeTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.JudgeTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ReportsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ReportsConfig) Merge(overlay *ReportsConfig) {
	if overlay.DefaultSLADays != 0 {
		c.DefaultSLADays = overlay.DefaultSLADays
	}
	if overlay.JudgeWorkers != 0 {
		c.JudgeWorkers = overlay.JudgeWorkers
	}
	if overlay.JudgeTimeout != "" {
		c.JudgeTimeout = overlay.JudgeTimeout
	}
}

func (c *ReportsConfig) loadDefaults() {
	if c.DefaultSLADays == 0 {
		c.DefaultSLADays = 2
	}
	if c.JudgeWorkers == 0 {
		c.JudgeWorkers = 1
	}
	if c.JudgeTimeout == "" {
		c.JudgeTimeout = "2m"
	}
}

func (c *ReportsConfig) loadEnv() {
	if v := os.Getenv(EnvReportsDefaultSLADays); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			c.DefaultSLADays = days
		}
	}
	if v := os.Getenv(EnvReportsJudgeWorkers); v != "" {
		if workers, err := strconv.Atoi(v); err == nil {
			c.JudgeWorkers = workers
		}
	}
	if v := os.Getenv(EnvReportsJudgeTimeout); v != "" {
		c.JudgeTimeout = v
	}
}

func (c *ReportsConfig) validate() error {
	if c.DefaultSLADays < 1 {
		return fmt.Errorf("invalid default_sla_days: %d", c.DefaultSLADays)
	}
	if c.JudgeWorkers < 1 {
		return fmt.Errorf("invalid judge_workers: %d", c.JudgeWorkers)
	}
	if _, err := time.ParseDuration(c.JudgeTimeout); err != nil {
		return fmt.Errorf("invalid judge_timeout: %w", err)
	}
	return nil
}
