// internal/models/ticket.go
package models

import (
	"fmt"
	"strings"
	"time"
)

// Ticket is the raw support request entering the decision engine.
type Ticket struct {
	TicketID    string    `json:"ticket_id"`
	CustomerID  string    `json:"customer_id"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate trims both ids and rejects tickets whose identifying fields are
// empty or whitespace-only. It mutates the receiver so downstream consumers
// always see canonical ids.
func (t *Ticket) Validate() error {
	t.TicketID = strings.TrimSpace(t.TicketID)
	t.CustomerID = strings.TrimSpace(t.CustomerID)

	if t.TicketID == "" {
		return fmt.Errorf("ticket_id must not be blank")
	}
	if t.CustomerID == "" {
		return fmt.Errorf("customer_id must not be blank")
	}
	if strings.TrimSpace(t.Subject) == "" && strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("ticket %s has neither subject nor description", t.TicketID)
	}
	return nil
}

// AgeHours returns the ticket age relative to now. Negative ages (clock skew,
// future-dated tickets) clamp to zero.
func (t Ticket) AgeHours(now time.Time) float64 {
	age := now.Sub(t.CreatedAt).Hours()
	if age < 0 {
		return 0
	}
	return age
}

// Text returns the searchable text of the ticket.
func (t Ticket) Text() string {
	return t.Subject + " " + t.Description
}
