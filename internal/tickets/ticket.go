// Package tickets implements conversation aggregation for support ticket batches.
// It groups flat message rows into per-ticket conversation threads with a
// stitched transcript suitable for policy matching and model analysis.
package tickets

import (
	"fmt"
	"strings"
)

// Row is one flat record from an uploaded ticket batch. Every message in a
// ticket's conversation arrives as its own row carrying the full ticket
// metadata alongside the message fields.
type Row struct {
	TicketID     string
	CustomerID   string
	CustomerName string
	Product      string
	Status       string
	PostedDate   string
	ClosedDate   string
	MessageFrom  string
	Content      string
	SentAt       string
}

// Message is a single conversation entry. Timestamps are carried as opaque
// strings; they are only interpreted downstream where parse failures can be
// recovered per record.
type Message struct {
	From    string `json:"from"`
	Content string `json:"content"`
	SentAt  string `json:"sent_at"`
}

// Ticket is a grouped conversation thread. Metadata fields hold the values
// from the first row seen for the ticket id; later rows only append messages.
type Ticket struct {
	ID           string    `json:"ticket_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Product      string    `json:"product_name"`
	Status       string    `json:"status"`
	PostedDate   string    `json:"posted_date"`
	ClosedDate   string    `json:"closed_date"`
	Messages     []Message `json:"messages"`
	Transcript   string    `json:"transcript"`
}

func (t *Ticket) rebuildTranscript() {
	lines := make([]string, len(t.Messages))
	for i, m := range t.Messages {
		lines[i] = fmt.Sprintf("%s: %s (%s)", strings.ToUpper(m.From), m.Content, m.SentAt)
	}
	t.Transcript = strings.Join(lines, "\n")
}

// Batch holds aggregated tickets keyed by id, preserving first-appearance order.
type Batch struct {
	order   []string
	tickets map[string]*Ticket
}

// Len returns the number of tickets in the batch.
func (b *Batch) Len() int {
	return len(b.order)
}

// Get returns the ticket for the given id, or nil if absent.
func (b *Batch) Get(id string) *Ticket {
	return b.tickets[id]
}

// Tickets returns all tickets in first-appearance order.
func (b *Batch) Tickets() []*Ticket {
	result := make([]*Ticket, len(b.order))
	for i, id := range b.order {
		result[i] = b.tickets[id]
	}
	return result
}

// Aggregate groups rows into tickets. Rows whose trimmed ticket id is empty
// are discarded. The first row seen for an id establishes the ticket's
// metadata; every valid row appends a message. Transcripts are rebuilt once
// all rows are consumed.
func Aggregate(rows []Row) *Batch {
	batch := &Batch{
		tickets: make(map[string]*Ticket),
	}

	for _, row := range rows {
		id := strings.TrimSpace(row.TicketID)
		if id == "" {
			continue
		}

		ticket, ok := batch.tickets[id]
		if !ok {
			ticket = &Ticket{
				ID:           id,
				CustomerID:   row.CustomerID,
				CustomerName: row.CustomerName,
				Product:      row.Product,
				Status:       row.Status,
				PostedDate:   row.PostedDate,
				ClosedDate:   row.ClosedDate,
			}
			batch.tickets[id] = ticket
			batch.order = append(batch.order, id)
		}

		ticket.Messages = append(ticket.Messages, Message{
			From:    row.MessageFrom,
			Content: row.Content,
			SentAt:  row.SentAt,
		})
	}

	for _, ticket := range batch.tickets {
		ticket.rebuildTranscript()
	}

	return batch
}
