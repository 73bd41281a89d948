// internal/tools/get-history/models.go
package gethistory

import "ticket-routing/internal/models"

type Input struct {
	CustomerID string `json:"customerId"`
	Limit      int    `json:"limit,omitempty"`
}

type Output struct {
	Context models.HistoricalContext `json:"context"`
}
