package reports

import (
	"time"

	"github.com/google/uuid"
)

// Row is one fully-analyzed ticket in a report. Pointer fields distinguish
// "not determinable" from zero values and marshal as JSON null.
type Row struct {
	TicketID        string   `json:"ticket_id"`
	CustomerID      string   `json:"customer_id"`
	CustomerName    string   `json:"customer_name"`
	Product         string   `json:"product_name"`
	Status          string   `json:"status"`
	PostedDate      string   `json:"posted_date"`
	ClosedDate      string   `json:"closed_date"`
	ResolutionHours *float64 `json:"resolution_hours"`
	SLADays         int      `json:"sla_days"`
	SLAMet          *bool    `json:"sla_met"`
	Owner           string   `json:"owner"`
	Satisfaction    *string  `json:"ai_satisfaction"`
	Sentiment       *string  `json:"ai_sentiment"`
	Rationale       *string  `json:"ai_rationale"`
	Verdict         Verdict  `json:"final_verdict"`
}

// Report is the analysis output for one uploaded batch.
type Report struct {
	ID          uuid.UUID `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Summary     Summary   `json:"summary"`
	Rows        []Row     `json:"rows"`
}
