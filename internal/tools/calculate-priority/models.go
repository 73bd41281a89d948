// internal/tools/calculate-priority/models.go
package calculatepriority

import "ticket-routing/internal/models"

type Input struct {
	Customer       models.CustomerProfile     `json:"customer"`
	Classification models.IssueClassification `json:"classification"`
	ServiceStatus  models.ServiceStatus       `json:"serviceStatus"`
	TicketAgeHours float64                    `json:"ticketAgeHours"`
}

type Output struct {
	Priority models.PriorityCalculation `json:"priority"`
}
