package policies

import (
	"strconv"
	"strings"
)

// DefaultSLADays is the threshold applied when no policy yields a usable value.
const DefaultSLADays = 2

// Resolve selects the SLA day threshold for a ticket using a two-tier,
// first-match-wins scan over the ordered policy list.
//
// Tier 1 considers only query-qualified rules: the category must match
// exactly and the rule's query must be a substring of the transcript. A rule
// whose SLA fails to parse is skipped without ending the tier; a qualified
// rule must not silently degrade to a broader rule that happens to appear
// earlier in tier 2.
//
// Tier 2 considers category-only matches in the same order, again skipping
// unparseable thresholds. If neither tier produces a value, defaultDays is
// returned.
func Resolve(category, transcript string, list []Policy, defaultDays int) int {
	for _, p := range list {
		if p.Category == category && p.Query != "" && strings.Contains(transcript, p.Query) {
			if days, ok := parseSLA(p.SLA); ok {
				return days
			}
		}
	}

	for _, p := range list {
		if p.Category == category {
			if days, ok := parseSLA(p.SLA); ok {
				return days
			}
		}
	}

	return defaultDays
}

// ResolveOwner returns the owner of the first policy whose category matches,
// or "Unknown" when no policy does. Owner assignment is category-wide; query
// qualification does not apply.
func ResolveOwner(category string, list []Policy) string {
	for _, p := range list {
		if p.Category == category {
			return p.Owner
		}
	}
	return "Unknown"
}

func parseSLA(s string) (int, bool) {
	days, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return days, true
}
