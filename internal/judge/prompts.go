package judge

import (
	"fmt"
	"strings"

	"github.com/JaimeStill/tribunal/internal/tickets"
)

const instructions = `You are an analyst assessing customer satisfaction in support tickets.

Given the full conversation (messages from customer and admin), decide:
- satisfaction: whether the customer's issue was resolved to their satisfaction
- sentiment: the customer's overall emotional tone across the conversation
- rationale: a concise explanation citing specific message cues

Base your assessment only on the conversation provided. Weigh the customer's
closing messages most heavily; an early complaint followed by thanks indicates
satisfaction, not dissatisfaction.`

const responseFormat = `Respond with a JSON object matching this exact structure:

{
  "satisfaction": "yes",
  "sentiment": "positive",
  "rationale": "<explanation>"
}

Field constraints:
- satisfaction: Exactly "yes" or "no".
- sentiment: One of "positive", "neutral", or "negative".
- rationale: One short paragraph citing message cues that support the
  satisfaction and sentiment assessments.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing
- Assess exactly one ticket per response`

// ComposePrompt builds the full judge prompt for a ticket: instructions,
// response format, and the ticket context with its stitched
// conversation transcript.
func ComposePrompt(t *tickets.Ticket) string {
	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(responseFormat)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Ticket ID: %s\n", t.ID)
	fmt.Fprintf(&sb, "Customer: %s\n", t.CustomerName)
	fmt.Fprintf(&sb, "Product: %s\n", t.Product)
	fmt.Fprintf(&sb, "Status: %s\n", t.Status)
	sb.WriteString("\nConversation (chronological):\n")
	sb.WriteString(t.Transcript)

	return sb.String()
}
