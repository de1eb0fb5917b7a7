package reports

import (
	"github.com/JaimeStill/tribunal/internal/judge"
	"github.com/JaimeStill/tribunal/internal/policies"
	"github.com/JaimeStill/tribunal/internal/tickets"
)

// BuildRows assembles report rows from aggregated tickets, per-ticket
// judgments, and the ordered policy list. Rows follow the batch's
// first-appearance ticket order. Tickets without a judgment entry carry nil
// satisfaction, sentiment, and rationale, which synthesize to the
// insufficient-data verdict.
func BuildRows(batch *tickets.Batch, judgments map[string]judge.Judgment, list []policies.Policy, defaultSLADays int) []Row {
	rows := make([]Row, 0, batch.Len())

	for _, t := range batch.Tickets() {
		slaDays := policies.Resolve(t.Product, t.Transcript, list, defaultSLADays)
		owner := policies.ResolveOwner(t.Product, list)
		compliance := EvaluateCompliance(t.PostedDate, t.ClosedDate, slaDays)

		var satisfaction, sentiment, rationale *string
		if j, ok := judgments[t.ID]; ok {
			satisfaction = j.Satisfaction
			sentiment = j.Sentiment
			rationale = &j.Rationale
		}

		rows = append(rows, Row{
			TicketID:        t.ID,
			CustomerID:      t.CustomerID,
			CustomerName:    t.CustomerName,
			Product:         t.Product,
			Status:          t.Status,
			PostedDate:      t.PostedDate,
			ClosedDate:      t.ClosedDate,
			ResolutionHours: compliance.ResolutionHours,
			SLADays:         slaDays,
			SLAMet:          compliance.Met,
			Owner:           owner,
			Satisfaction:    satisfaction,
			Sentiment:       sentiment,
			Rationale:       rationale,
			Verdict:         Synthesize(compliance.Met, satisfaction),
		})
	}

	return rows
}
