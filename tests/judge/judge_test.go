package judge_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/tribunal/internal/judge"
	"github.com/JaimeStill/tribunal/internal/tickets"
)

func sampleTicket() *tickets.Ticket {
	batch := tickets.Aggregate([]tickets.Row{
		{
			TicketID:     "T1",
			CustomerName: "Acme",
			Product:      "Billing",
			Status:       "Closed",
			MessageFrom:  "customer",
			Content:      "Where is my refund?",
			SentAt:       "2024-01-01 09:00:00",
		},
		{
			TicketID:    "T1",
			MessageFrom: "agent",
			Content:     "Refund sent, apologies for the delay",
			SentAt:      "2024-01-01 11:00:00",
		},
	})
	return batch.Get("T1")
}

func TestComposePrompt(t *testing.T) {
	prompt := judge.ComposePrompt(sampleTicket())

	for _, want := range []string{
		"Ticket ID: T1",
		"Customer: Acme",
		"Product: Billing",
		"Status: Closed",
		"Conversation (chronological):",
		"CUSTOMER: Where is my refund? (2024-01-01 09:00:00)",
		"AGENT: Refund sent, apologies for the delay (2024-01-01 11:00:00)",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestComposePromptResponseContract(t *testing.T) {
	prompt := judge.ComposePrompt(sampleTicket())

	for _, want := range []string{
		`"satisfaction"`,
		`"sentiment"`,
		`"rationale"`,
		`"yes" or "no"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing response constraint %q", want)
		}
	}
}

func TestUnusable(t *testing.T) {
	j := judge.Unusable("model returned prose instead of JSON")

	if j.Satisfaction != nil || j.Sentiment != nil {
		t.Error("unusable judgment should carry nil assessments")
	}
	if j.Rationale != "model returned prose instead of JSON" {
		t.Errorf("Rationale = %q", j.Rationale)
	}
}
