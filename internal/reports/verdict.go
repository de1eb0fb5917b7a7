package reports

import "strings"

// Verdict is the final per-ticket outcome synthesized from SLA compliance and
// the AI satisfaction judgment.
type Verdict string

const (
	VerdictSatisfiedWithinSLA   Verdict = "Resolved within SLA to customer satisfaction"
	VerdictSatisfiedBreached    Verdict = "Resolved to satisfaction (SLA breached)"
	VerdictUnsatisfiedWithinSLA Verdict = "Within SLA but not satisfactory"
	VerdictUnsatisfiedBreached  Verdict = "Not within SLA and not satisfactory"
	VerdictInsufficientData     Verdict = "Insufficient data"
)

// Synthesize maps the compliance and satisfaction signals to a verdict. A nil
// compliance result, a nil satisfaction, or a satisfaction value other than
// yes/no (compared case-insensitively) all collapse to the insufficient-data
// verdict rather than guessing.
func Synthesize(met *bool, satisfaction *string) Verdict {
	if met == nil || satisfaction == nil {
		return VerdictInsufficientData
	}

	switch strings.ToLower(strings.TrimSpace(*satisfaction)) {
	case "yes":
		if *met {
			return VerdictSatisfiedWithinSLA
		}
		return VerdictSatisfiedBreached
	case "no":
		if *met {
			return VerdictUnsatisfiedWithinSLA
		}
		return VerdictUnsatisfiedBreached
	default:
		return VerdictInsufficientData
	}
}
