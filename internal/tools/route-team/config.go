// internal/tools/route-team/config.go
package routeteam

import "ticket-routing/internal/models"

// Route binds one issue category to a team and a base confidence.
type Route struct {
	Team           models.Team
	BaseConfidence float64
}

type Config struct {
	Routes map[string]Route

	// Fallback route for categories outside the map.
	DefaultRoute Route

	// ReviewThreshold flags decisions below it for manual review.
	ReviewThreshold float64

	// OutageBoost replaces the computed confidence when an active outage
	// corroborates a Network Outage classification.
	OutageBoost float64
}

func LoadConfig() *Config {
	return &Config{
		Routes: map[string]Route{
			"Network Outage":    {Team: models.TeamNetworkOperations, BaseConfidence: 0.9},
			"Billing Dispute":   {Team: models.TeamBillingSupport, BaseConfidence: 0.9},
			"Technical Problem": {Team: models.TeamTechnicalSupport, BaseConfidence: 0.8},
			"Account Access":    {Team: models.TeamAccountManagement, BaseConfidence: 0.9},
		},
		DefaultRoute:    Route{Team: models.TeamTechnicalSupport, BaseConfidence: 0.6},
		ReviewThreshold: 0.7,
		OutageBoost:     0.95,
	}
}
