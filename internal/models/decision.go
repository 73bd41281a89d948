// internal/models/decision.go
package models

import "time"

// IssueClassification is the classifier tool's verdict on a ticket.
type IssueClassification struct {
	PrimaryCategory     string   `json:"primary_category"`
	Confidence          float64  `json:"confidence"`
	Keywords            []string `json:"keywords"`
	SecondaryCategories []string `json:"secondary_categories"`
}

// ExtractedEntities holds structured references pulled out of ticket text.
type ExtractedEntities struct {
	AccountNumbers  []string  `json:"account_numbers"`
	ServiceIDs      []string  `json:"service_ids"`
	ErrorCodes      []string  `json:"error_codes"`
	PhoneNumbers    []string  `json:"phone_numbers"`
	MonetaryAmounts []float64 `json:"monetary_amounts"`
}

// CustomerProfile is the directory view of a customer.
type CustomerProfile struct {
	CustomerID      string      `json:"customer_id"`
	IsVIP           bool        `json:"is_vip"`
	AccountTier     AccountTier `json:"account_tier"`
	LifetimeValue   float64     `json:"lifetime_value"`
	AccountStanding string      `json:"account_standing"`
	ServicePlan     string      `json:"service_plan"`
}

// DefaultCustomerProfile is the safe profile used when a customer is unknown
// or the directory is unreachable.
func DefaultCustomerProfile(customerID string) CustomerProfile {
	return CustomerProfile{
		CustomerID:      customerID,
		IsVIP:           false,
		AccountTier:     TierConsumer,
		LifetimeValue:   0,
		AccountStanding: "Good",
		ServicePlan:     "Basic",
	}
}

// Outage describes one active incident on a service.
type Outage struct {
	ServiceID   string    `json:"service_id"`
	Severity    string    `json:"severity"`
	StartedAt   time.Time `json:"started_at"`
	Description string    `json:"description"`
}

// ServiceStatus is the aggregated health over the services a ticket mentions.
type ServiceStatus struct {
	Health        ServiceHealth `json:"health"`
	ActiveOutages []Outage      `json:"active_outages"`
}

// PriorityCalculation is the scorer tool's output.
type PriorityCalculation struct {
	Level     PriorityLevel      `json:"level"`
	Score     float64            `json:"score"`
	Factors   map[string]float64 `json:"factors"`
	Reasoning string             `json:"reasoning"`
}

// RoutingDecision is the router tool's output.
type RoutingDecision struct {
	AssignedTeam         Team    `json:"assigned_team"`
	Confidence           float64 `json:"confidence"`
	AlternativeTeams     []Team  `json:"alternative_teams"`
	Reasoning            string  `json:"reasoning"`
	RequiresManualReview bool    `json:"requires_manual_review"`
}

// HistoricalTicket is one resolved ticket from the customer's history.
type HistoricalTicket struct {
	TicketID            string    `json:"ticket_id"`
	IssueType           string    `json:"issue_type"`
	ResolutionTimeHours float64   `json:"resolution_time_hours"`
	Escalated           bool      `json:"escalated"`
	ResolvedAt          time.Time `json:"resolved_at"`
}

// HistoricalContext summarizes a customer's past tickets. Available is false
// when the history backend could not be reached.
type HistoricalContext struct {
	RecentTickets     []HistoricalTicket `json:"recent_tickets"`
	CommonIssues      []string           `json:"common_issues"`
	EscalationHistory bool               `json:"escalation_history"`
	Available         bool               `json:"available"`
}

// FinalDecision is the terminal artifact of one decision cycle.
type FinalDecision struct {
	DecisionID           string        `json:"decision_id"`
	TicketID             string        `json:"ticket_id"`
	CustomerID           string        `json:"customer_id"`
	AssignedTeam         Team          `json:"assigned_team"`
	PriorityLevel        PriorityLevel `json:"priority_level"`
	ConfidenceScore      float64       `json:"confidence_score"`
	Reasoning            string        `json:"reasoning"`
	ProcessingTimeMs     float64       `json:"processing_time_ms"`
	RequiresManualReview bool          `json:"requires_manual_review"`
	Timestamp            time.Time     `json:"timestamp"`
}
