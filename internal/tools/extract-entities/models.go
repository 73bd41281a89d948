// internal/tools/extract-entities/models.go
package extractentities

import "ticket-routing/internal/models"

type Input struct {
	TicketText string `json:"ticketText"`
}

type Output struct {
	Entities models.ExtractedEntities `json:"entities"`
}
