// internal/tools/check-customer/models.go
package checkcustomer

import "ticket-routing/internal/models"

type Input struct {
	CustomerID string `json:"customerId"`
}

type Output struct {
	Profile models.CustomerProfile `json:"profile"`
}
