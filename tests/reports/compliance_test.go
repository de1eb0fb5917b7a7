package reports_test

import (
	"testing"

	"github.com/JaimeStill/tribunal/internal/reports"
)

func TestEvaluateCompliance(t *testing.T) {
	tests := []struct {
		name      string
		posted    string
		closed    string
		slaDays   int
		wantHours float64
		wantMet   bool
	}{
		{
			name:      "resolved within threshold",
			posted:    "2024-01-01 09:00:00",
			closed:    "2024-01-02 09:00:00",
			slaDays:   2,
			wantHours: 24,
			wantMet:   true,
		},
		{
			name:      "exactly at threshold counts as met",
			posted:    "2024-01-01 00:00:00",
			closed:    "2024-01-03 00:00:00",
			slaDays:   2,
			wantHours: 48,
			wantMet:   true,
		},
		{
			name:      "one minute over threshold breaches",
			posted:    "2024-01-01 00:00:00",
			closed:    "2024-01-03 00:01:00",
			slaDays:   2,
			wantHours: 48.02,
			wantMet:   false,
		},
		{
			name:      "fractional hours round to two decimals",
			posted:    "2024-01-01 00:00:00",
			closed:    "2024-01-01 01:20:00",
			slaDays:   1,
			wantHours: 1.33,
			wantMet:   true,
		},
		{
			name:      "closed before posted yields negative hours",
			posted:    "2024-01-02 00:00:00",
			closed:    "2024-01-01 00:00:00",
			slaDays:   1,
			wantHours: -24,
			wantMet:   true,
		},
		{
			name:      "rfc3339 timestamps",
			posted:    "2024-01-01T09:00:00Z",
			closed:    "2024-01-01T15:00:00Z",
			slaDays:   1,
			wantHours: 6,
			wantMet:   true,
		},
		{
			name:      "date-only values",
			posted:    "2024-01-01",
			closed:    "2024-01-04",
			slaDays:   2,
			wantHours: 72,
			wantMet:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reports.EvaluateCompliance(tt.posted, tt.closed, tt.slaDays)

			if got.ResolutionHours == nil || got.Met == nil {
				t.Fatalf("got nil fields for parseable timestamps: %+v", got)
			}
			if *got.ResolutionHours != tt.wantHours {
				t.Errorf("ResolutionHours = %v, want %v", *got.ResolutionHours, tt.wantHours)
			}
			if *got.Met != tt.wantMet {
				t.Errorf("Met = %v, want %v", *got.Met, tt.wantMet)
			}
		})
	}
}

func TestEvaluateComplianceIndeterminate(t *testing.T) {
	tests := []struct {
		name   string
		posted string
		closed string
	}{
		{"unparseable posted", "not a date", "2024-01-02 09:00:00"},
		{"unparseable closed", "2024-01-01 09:00:00", "pending"},
		{"both unparseable", "???", "???"},
		{"empty posted", "", "2024-01-02 09:00:00"},
		{"empty closed", "2024-01-01 09:00:00", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reports.EvaluateCompliance(tt.posted, tt.closed, 2)

			if got.Met != nil {
				t.Errorf("Met = %v, want nil", *got.Met)
			}
			if got.ResolutionHours != nil {
				t.Errorf("ResolutionHours = %v, want nil", *got.ResolutionHours)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Run("naive timestamps interpreted as UTC", func(t *testing.T) {
		got, ok := reports.ParseTimestamp("2024-06-15 12:00:00")
		if !ok {
			t.Fatal("expected parse success")
		}
		if got.Location().String() != "UTC" {
			t.Errorf("location = %v, want UTC", got.Location())
		}
	})

	t.Run("zoned timestamps normalize to UTC", func(t *testing.T) {
		got, ok := reports.ParseTimestamp("2024-06-15T12:00:00+02:00")
		if !ok {
			t.Fatal("expected parse success")
		}
		if got.Hour() != 10 {
			t.Errorf("hour = %d, want 10", got.Hour())
		}
	})

	t.Run("garbage fails", func(t *testing.T) {
		if _, ok := reports.ParseTimestamp("soon"); ok {
			t.Error("expected parse failure")
		}
	})
}
