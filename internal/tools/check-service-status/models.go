// internal/tools/check-service-status/models.go
package checkservicestatus

import "ticket-routing/internal/models"

type Input struct {
	ServiceIDs []string `json:"serviceIds"`
}

type Output struct {
	Status models.ServiceStatus `json:"status"`
}
