// internal/models/enums.go
package models

// Team identifies a support team that can own a ticket.
type Team string

const (
	TeamNetworkOperations Team = "Network Operations"
	TeamBillingSupport    Team = "Billing Support"
	TeamTechnicalSupport  Team = "Technical Support"
	TeamAccountManagement Team = "Account Management"
)

// PriorityLevel is the urgency tier assigned to a ticket.
type PriorityLevel string

const (
	PriorityP0 PriorityLevel = "P0"
	PriorityP1 PriorityLevel = "P1"
	PriorityP2 PriorityLevel = "P2"
	PriorityP3 PriorityLevel = "P3"
)

// AccountTier is the customer's commercial tier.
type AccountTier string

const (
	TierEnterprise AccountTier = "Enterprise"
	TierBusiness   AccountTier = "Business"
	TierConsumer   AccountTier = "Consumer"
)

// ServiceHealth describes the operational state of a service.
type ServiceHealth string

const (
	HealthHealthy  ServiceHealth = "Healthy"
	HealthDegraded ServiceHealth = "Degraded"
	HealthOutage   ServiceHealth = "Outage"
)

// healthRank orders service health from best to worst.
var healthRank = map[ServiceHealth]int{
	HealthHealthy:  0,
	HealthDegraded: 1,
	HealthOutage:   2,
}

// WorseHealth returns the worse of two health states.
func WorseHealth(a, b ServiceHealth) ServiceHealth {
	if healthRank[b] > healthRank[a] {
		return b
	}
	return a
}

// Issue categories recognized by the classifier. Declaration order is the
// tie-break order for equal classification scores.
const (
	CategoryNetworkOutage    = "Network Outage"
	CategoryBillingDispute   = "Billing Dispute"
	CategoryTechnicalProblem = "Technical Problem"
	CategoryAccountAccess    = "Account Access"
)
