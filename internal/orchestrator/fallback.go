// internal/orchestrator/fallback.go
package orchestrator

import (
	"fmt"
	"time"

	"ticket-routing/internal/models"

	commonerrors "ticket-routing/internal/common/errors"

	"github.com/google/uuid"
)

const (
	fallbackTeam       = models.TeamTechnicalSupport
	fallbackPriority   = models.PriorityP2
	fallbackConfidence = 50.0
)

// fallbackDecision produces the safe default when the driver fails. It never
// calls tools and never fails itself; every failed cycle still yields a
// decision an operator can act on.
func fallbackDecision(ticket models.Ticket, category commonerrors.FailureCategory, cause error) *models.FinalDecision {
	var reasoning string
	switch category {
	case commonerrors.FailureRateLimited:
		reasoning = "Fallback routing due to rate limiting. The system is experiencing high load. " +
			"Defaulting to Technical Support with medium priority. Manual review required to ensure proper routing."
	case commonerrors.FailureAccessDenied:
		reasoning = "Fallback routing due to access denied error. Gateway credentials may be invalid or lack permissions. " +
			"Defaulting to Technical Support with medium priority. Manual review required. Please check driver configuration."
	case commonerrors.FailureUpstreamUnavailable:
		reasoning = "Fallback routing due to upstream unavailability. The reasoning backend may be down or misconfigured. " +
			"Defaulting to Technical Support with medium priority. Manual review required. Please verify gateway configuration."
	case commonerrors.FailureNetwork:
		reasoning = "Fallback routing due to network connectivity issue. Unable to reach the reasoning backend. " +
			"Defaulting to Technical Support with medium priority. Manual review required. Please check connectivity."
	default:
		reasoning = fmt.Sprintf("Fallback routing due to error: %v. "+
			"Defaulting to Technical Support with medium priority. Manual review required to ensure proper routing.", cause)
	}

	return &models.FinalDecision{
		DecisionID:           uuid.NewString(),
		TicketID:             ticket.TicketID,
		CustomerID:           ticket.CustomerID,
		AssignedTeam:         fallbackTeam,
		PriorityLevel:        fallbackPriority,
		ConfidenceScore:      fallbackConfidence,
		Reasoning:            reasoning,
		RequiresManualReview: true,
		Timestamp:            time.Now().UTC(),
	}
}
