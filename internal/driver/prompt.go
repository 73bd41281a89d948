// internal/driver/prompt.go
package driver

import (
	"strconv"
	"strings"
)

// ticketFacts are the fields a driver needs back out of the orchestrator's
// prompt. The prompt format is stable, so a line-prefix scan is enough.
type ticketFacts struct {
	TicketID    string
	CustomerID  string
	Subject     string
	Description string
	AgeHours    float64
}

func parseTicketFacts(prompt string) ticketFacts {
	var facts ticketFacts
	for _, line := range strings.Split(prompt, "\n") {
		switch {
		case strings.HasPrefix(line, "Ticket ID: "):
			facts.TicketID = strings.TrimPrefix(line, "Ticket ID: ")
		case strings.HasPrefix(line, "Customer ID: "):
			facts.CustomerID = strings.TrimPrefix(line, "Customer ID: ")
		case strings.HasPrefix(line, "Subject: "):
			facts.Subject = strings.TrimPrefix(line, "Subject: ")
		case strings.HasPrefix(line, "Description: "):
			facts.Description = strings.TrimPrefix(line, "Description: ")
		case strings.HasPrefix(line, "Ticket Age: "):
			raw := strings.TrimSuffix(strings.TrimPrefix(line, "Ticket Age: "), " hours")
			if v, err := strconv.ParseFloat(raw, 64); err == nil {
				facts.AgeHours = v
			}
		}
	}
	return facts
}

func (f ticketFacts) text() string {
	return strings.TrimSpace(f.Subject + " " + f.Description)
}
