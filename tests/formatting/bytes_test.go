package formatting_test

import (
	"testing"

	"github.com/JaimeStill/tribunal/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"0", 0},
		{"1024", 1024},
		{"1B", 1},
		{"1KB", 1024},
		{"50MB", 50 * 1024 * 1024},
		{"2GB", 2 * 1024 * 1024 * 1024},
		{"1.5KB", 1536},
		{"1 MB", 1024 * 1024},
		{"1mb", 1024 * 1024},
		{"  10KB  ", 10 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if err != nil {
				t.Fatalf("ParseBytes(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBytesInvalid(t *testing.T) {
	tests := []string{"", "MB", "ten MB", "10XB", "-5MB"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := formatting.ParseBytes(input); err == nil {
				t.Errorf("ParseBytes(%q) expected error", input)
			}
		})
	}
}
