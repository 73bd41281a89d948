// internal/tools/route-team/models.go
package routeteam

import "ticket-routing/internal/models"

type Input struct {
	Classification models.IssueClassification `json:"classification"`
	Entities       models.ExtractedEntities   `json:"entities"`
	ServiceStatus  models.ServiceStatus       `json:"serviceStatus"`
}

type Output struct {
	Routing models.RoutingDecision `json:"routing"`
}
