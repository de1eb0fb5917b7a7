package reports

import (
	"math"
	"strings"
	"time"
)

// Compliance is the SLA evaluation result for one ticket. Both fields are nil
// when either timestamp could not be parsed: an explicit indeterminate state,
// distinct from a breach.
type Compliance struct {
	Met             *bool    `json:"sla_met"`
	ResolutionHours *float64 `json:"resolution_hours"`
}

// Accepted timestamp layouts, tried in order. Layouts without an explicit
// zone are interpreted as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ParseTimestamp parses a timestamp string into a UTC instant, reporting
// failure instead of returning an error so callers can coerce unparseable
// values into the indeterminate state.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// EvaluateCompliance computes elapsed resolution hours between the posted and
// closed timestamps and compares them against the SLA threshold in days.
// Hours are rounded to two decimal places. A closed time preceding the posted
// time yields a negative duration that trivially meets the threshold; input
// ordering is not validated here.
func EvaluateCompliance(posted, closed string, slaDays int) Compliance {
	postedAt, okPosted := ParseTimestamp(posted)
	closedAt, okClosed := ParseTimestamp(closed)
	if !okPosted || !okClosed {
		return Compliance{}
	}

	hours := math.Round(closedAt.Sub(postedAt).Hours()*100) / 100
	met := hours <= float64(slaDays)*24

	return Compliance{
		Met:             &met,
		ResolutionHours: &hours,
	}
}
