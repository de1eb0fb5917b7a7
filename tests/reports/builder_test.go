package reports_test

import (
	"reflect"
	"testing"

	"github.com/JaimeStill/tribunal/internal/judge"
	"github.com/JaimeStill/tribunal/internal/policies"
	"github.com/JaimeStill/tribunal/internal/reports"
	"github.com/JaimeStill/tribunal/internal/tickets"
)

func billingBatch() *tickets.Batch {
	return tickets.Aggregate([]tickets.Row{
		{
			TicketID:     "T1",
			CustomerID:   "C1",
			CustomerName: "Acme",
			Product:      "Billing",
			Status:       "Closed",
			PostedDate:   "2024-01-01 09:00:00",
			ClosedDate:   "2024-01-02 09:00:00",
			MessageFrom:  "customer",
			Content:      "I need a refund for the duplicate charge",
			SentAt:       "2024-01-01 09:00:00",
		},
		{
			TicketID:     "T1",
			CustomerID:   "C1",
			CustomerName: "Acme",
			Product:      "Billing",
			Status:       "Closed",
			PostedDate:   "2024-01-01 09:00:00",
			ClosedDate:   "2024-01-02 09:00:00",
			MessageFrom:  "agent",
			Content:      "Refund issued, sorry for the trouble",
			SentAt:       "2024-01-01 12:00:00",
		},
	})
}

func billingPolicies() []policies.Policy {
	return []policies.Policy{
		{Category: "Billing", Query: "", Owner: "Alice", SLA: "3", Position: 1},
		{Category: "Billing", Query: "refund", Owner: "Alice", SLA: "1", Position: 2},
	}
}

func TestBuildRows(t *testing.T) {
	batch := billingBatch()
	judgments := map[string]judge.Judgment{
		"T1": {
			Satisfaction: strPtr("yes"),
			Sentiment:    strPtr("positive"),
			Rationale:    "Customer thanked the agent after the refund",
		},
	}

	rows := reports.BuildRows(batch, judgments, billingPolicies(), policies.DefaultSLADays)

	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}

	row := rows[0]
	if row.TicketID != "T1" {
		t.Errorf("TicketID = %q, want T1", row.TicketID)
	}

	// The refund rule qualifies against the transcript, so the tighter
	// one-day threshold applies over the category-wide three days.
	if row.SLADays != 1 {
		t.Errorf("SLADays = %d, want 1", row.SLADays)
	}
	if row.Owner != "Alice" {
		t.Errorf("Owner = %q, want Alice", row.Owner)
	}

	if row.ResolutionHours == nil || *row.ResolutionHours != 24 {
		t.Errorf("ResolutionHours = %v, want 24", row.ResolutionHours)
	}
	if row.SLAMet == nil || !*row.SLAMet {
		t.Errorf("SLAMet = %v, want true", row.SLAMet)
	}

	if row.Satisfaction == nil || *row.Satisfaction != "yes" {
		t.Errorf("Satisfaction = %v, want yes", row.Satisfaction)
	}
	if row.Sentiment == nil || *row.Sentiment != "positive" {
		t.Errorf("Sentiment = %v, want positive", row.Sentiment)
	}
	if row.Rationale == nil || *row.Rationale == "" {
		t.Error("Rationale should carry the judgment text")
	}

	if row.Verdict != reports.VerdictSatisfiedWithinSLA {
		t.Errorf("Verdict = %q, want %q", row.Verdict, reports.VerdictSatisfiedWithinSLA)
	}
}

func TestBuildRowsMissingJudgment(t *testing.T) {
	rows := reports.BuildRows(billingBatch(), nil, billingPolicies(), policies.DefaultSLADays)

	row := rows[0]
	if row.Satisfaction != nil || row.Sentiment != nil || row.Rationale != nil {
		t.Errorf("judgment fields should be nil, got %+v", row)
	}
	if row.Verdict != reports.VerdictInsufficientData {
		t.Errorf("Verdict = %q, want %q", row.Verdict, reports.VerdictInsufficientData)
	}

	// SLA evaluation is independent of judgment availability.
	if row.SLAMet == nil || row.ResolutionHours == nil {
		t.Error("compliance fields should still be populated")
	}
}

func TestBuildRowsNoMatchingPolicy(t *testing.T) {
	rows := reports.BuildRows(billingBatch(), nil, nil, policies.DefaultSLADays)

	row := rows[0]
	if row.SLADays != policies.DefaultSLADays {
		t.Errorf("SLADays = %d, want default %d", row.SLADays, policies.DefaultSLADays)
	}
	if row.Owner != "Unknown" {
		t.Errorf("Owner = %q, want Unknown", row.Owner)
	}
}

func TestBuildRowsPreservesBatchOrder(t *testing.T) {
	var input []tickets.Row
	for _, id := range []string{"T9", "T2", "T5"} {
		input = append(input, tickets.Row{
			TicketID:    id,
			Product:     "Widget",
			PostedDate:  "2024-01-01",
			ClosedDate:  "2024-01-02",
			MessageFrom: "customer",
			Content:     "hello",
		})
	}

	rows := reports.BuildRows(tickets.Aggregate(input), nil, nil, policies.DefaultSLADays)

	want := []string{"T9", "T2", "T5"}
	for i, id := range want {
		if rows[i].TicketID != id {
			t.Fatalf("row %d = %q, want %q", i, rows[i].TicketID, id)
		}
	}
}

func TestBuildRowsDeterministic(t *testing.T) {
	batch := billingBatch()
	judgments := map[string]judge.Judgment{
		"T1": {Satisfaction: strPtr("no"), Sentiment: strPtr("negative"), Rationale: "unresolved complaint"},
	}

	first := reports.BuildRows(batch, judgments, billingPolicies(), policies.DefaultSLADays)
	second := reports.BuildRows(batch, judgments, billingPolicies(), policies.DefaultSLADays)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated builds over the same inputs should be identical")
	}
}
