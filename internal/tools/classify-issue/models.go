// internal/tools/classify-issue/models.go
package classifyissue

import "ticket-routing/internal/models"

type Input struct {
	TicketText string `json:"ticketText"`
}

type Output struct {
	Classification models.IssueClassification `json:"classification"`
}
