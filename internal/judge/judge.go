// Package judge implements the satisfaction assessment for ticket
// conversations. It wraps a model agent behind a single-capability interface
// so report evaluation stays testable with a deterministic stub.
package judge

import (
	"context"

	"github.com/JaimeStill/tribunal/internal/tickets"
)

// Judgment is the satisfaction assessment for one ticket. Satisfaction and
// Sentiment are nil when the model call failed or returned content that could
// not be parsed; Rationale then preserves the raw content or error text for
// diagnosis. A nil-satisfaction judgment surfaces downstream as an
// insufficient-data verdict, never as a batch failure.
type Judgment struct {
	Satisfaction *string `json:"satisfaction"`
	Sentiment    *string `json:"sentiment"`
	Rationale    string  `json:"rationale"`
}

// System defines the judge contract: one blocking assessment per ticket.
// Implementations absorb call and parse failures into the returned Judgment.
type System interface {
	Judge(ctx context.Context, ticket *tickets.Ticket) Judgment
}

// Unusable creates a Judgment carrying only diagnostic text.
func Unusable(rationale string) Judgment {
	return Judgment{Rationale: rationale}
}
