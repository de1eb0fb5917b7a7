// Package policies implements the SLA policy domain. It provides types, data
// access, and resolution logic for the ordered list of service-level rules
// that ticket evaluation reads against.
package policies

import "github.com/google/uuid"

// Policy is one service-level rule. Category is matched exactly against a
// ticket's product; Query, when non-empty, qualifies the rule to transcripts
// containing the substring. SLA is stored as text and parsed at resolution
// time so a malformed threshold degrades a single rule, never the list.
// Position fixes the rule's place in the ordered list; resolution is
// first-match-wins in position order.
type Policy struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category"`
	Query    string    `json:"query"`
	Owner    string    `json:"owner"`
	SLA      string    `json:"sla"`
	Position int       `json:"position"`
}

// CreateCommand carries the data needed to create a policy. New policies are
// appended to the end of the ordered list.
type CreateCommand struct {
	Category string `json:"category"`
	Query    string `json:"query"`
	Owner    string `json:"owner"`
	SLA      string `json:"sla"`
}

// UpdateCommand carries the data needed to update a policy in place.
// Position is not updatable here; use MoveCommand.
type UpdateCommand struct {
	Category string `json:"category"`
	Query    string `json:"query"`
	Owner    string `json:"owner"`
	SLA      string `json:"sla"`
}

// MoveCommand repositions a policy within the ordered list.
type MoveCommand struct {
	Position int `json:"position"`
}
