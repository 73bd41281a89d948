// internal/tools/route-team/handler_test.go
package routeteam

import (
	"context"
	"testing"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func route(t *testing.T, input *Input) *Output {
	h := NewHandler(LoadConfig(), logger.NewTestLogger(t))
	out, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	return out
}

func classified(category string, confidence float64) models.IssueClassification {
	return models.IssueClassification{PrimaryCategory: category, Confidence: confidence}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_CategoryRouting(t *testing.T) {
	tests := []struct {
		name               string
		category           string
		expectedTeam       models.Team
		expectedConfidence float64
	}{
		{
			name:               "network outage to network operations",
			category:           models.CategoryNetworkOutage,
			expectedTeam:       models.TeamNetworkOperations,
			expectedConfidence: 0.9,
		},
		{
			name:               "billing dispute to billing support",
			category:           models.CategoryBillingDispute,
			expectedTeam:       models.TeamBillingSupport,
			expectedConfidence: 0.9,
		},
		{
			name:               "technical problem to technical support",
			category:           models.CategoryTechnicalProblem,
			expectedTeam:       models.TeamTechnicalSupport,
			expectedConfidence: 0.8,
		},
		{
			name:               "account access to account management",
			category:           models.CategoryAccountAccess,
			expectedTeam:       models.TeamAccountManagement,
			expectedConfidence: 0.9,
		},
		{
			name:               "unknown category defaults to technical support",
			category:           "Something Else",
			expectedTeam:       models.TeamTechnicalSupport,
			expectedConfidence: 0.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Classifier fully confident, so confidence equals the base.
			out := route(t, &Input{
				Classification: classified(tt.category, 1.0),
				ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
			})

			assert.Equal(t, tt.expectedTeam, out.Routing.AssignedTeam)
			assert.InDelta(t, tt.expectedConfidence, out.Routing.Confidence, 1e-9)
		})
	}
}

func TestHandler_Execute_ConfidenceCompoundsClassification(t *testing.T) {
	out := route(t, &Input{
		Classification: classified(models.CategoryBillingDispute, 0.5),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
	})

	assert.InDelta(t, 0.45, out.Routing.Confidence, 1e-9)
	assert.True(t, out.Routing.RequiresManualReview)
	assert.Contains(t, out.Routing.Reasoning, "flagged for manual review")
}

func TestHandler_Execute_ReviewThresholdBoundary(t *testing.T) {
	// 0.9 * 0.778 = 0.7002, just above the threshold.
	above := route(t, &Input{
		Classification: classified(models.CategoryBillingDispute, 0.778),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
	})
	assert.False(t, above.Routing.RequiresManualReview)

	// 0.8 * 0.875 = 0.7 exactly; review triggers strictly below threshold.
	exact := route(t, &Input{
		Classification: classified(models.CategoryTechnicalProblem, 0.875),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
	})
	assert.False(t, exact.Routing.RequiresManualReview)
}

func TestHandler_Execute_OutageBoostsNetworkRouting(t *testing.T) {
	// Weak classification (0.9 * 0.3 = 0.27) boosted by the live outage.
	out := route(t, &Input{
		Classification: classified(models.CategoryNetworkOutage, 0.3),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthOutage},
	})

	assert.Equal(t, models.TeamNetworkOperations, out.Routing.AssignedTeam)
	assert.InDelta(t, 0.95, out.Routing.Confidence, 1e-9)
	assert.False(t, out.Routing.RequiresManualReview)
	assert.Contains(t, out.Routing.Reasoning, "Active outage confirms network issue")
}

func TestHandler_Execute_OutageDoesNotBoostOtherCategories(t *testing.T) {
	out := route(t, &Input{
		Classification: classified(models.CategoryBillingDispute, 0.5),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthOutage},
	})

	assert.InDelta(t, 0.45, out.Routing.Confidence, 1e-9)
	assert.True(t, out.Routing.RequiresManualReview)
}

func TestHandler_Execute_AlternativeTeamsFromSecondaryCategories(t *testing.T) {
	out := route(t, &Input{
		Classification: models.IssueClassification{
			PrimaryCategory:     models.CategoryNetworkOutage,
			Confidence:          1.0,
			SecondaryCategories: []string{models.CategoryTechnicalProblem, models.CategoryBillingDispute},
		},
		ServiceStatus: models.ServiceStatus{Health: models.HealthHealthy},
	})

	assert.Equal(t, []models.Team{models.TeamTechnicalSupport, models.TeamBillingSupport}, out.Routing.AlternativeTeams)
}

func TestHandler_Execute_AlternativesExcludeAssignedTeam(t *testing.T) {
	// Unknown primary routes to Technical Support; a technical secondary
	// would duplicate the assignment and is dropped.
	out := route(t, &Input{
		Classification: models.IssueClassification{
			PrimaryCategory:     "Something Else",
			Confidence:          1.0,
			SecondaryCategories: []string{models.CategoryTechnicalProblem, models.CategoryAccountAccess},
		},
		ServiceStatus: models.ServiceStatus{Health: models.HealthHealthy},
	})

	assert.Equal(t, []models.Team{models.TeamAccountManagement}, out.Routing.AlternativeTeams)
}
