// internal/tools/calculate-priority/handler_test.go
package calculatepriority

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

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func score(t *testing.T, input *Input) *Output {
	out, err := createTestHandler(t).Execute(context.Background(), input)
	require.NoError(t, err)
	return out
}

func vipCustomer() models.CustomerProfile {
	return models.CustomerProfile{CustomerID: "CUST001", IsVIP: true, AccountTier: models.TierEnterprise}
}

func consumerCustomer() models.CustomerProfile {
	return models.DefaultCustomerProfile("CUST002")
}

func classification(category string) models.IssueClassification {
	return models.IssueClassification{PrimaryCategory: category, Confidence: 0.8}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_MaximumScoreIsP0(t *testing.T) {
	out := score(t, &Input{
		Customer:       vipCustomer(),
		Classification: classification(models.CategoryNetworkOutage),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthOutage},
		TicketAgeHours: 72,
	})

	assert.Equal(t, models.PriorityP0, out.Priority.Level)
	assert.Equal(t, 100.0, out.Priority.Score)
	assert.Equal(t, 30.0, out.Priority.Factors["vip_bonus"])
	assert.Equal(t, 40.0, out.Priority.Factors["severity"])
	assert.Equal(t, 20.0, out.Priority.Factors["age_penalty"])
	assert.Equal(t, 10.0, out.Priority.Factors["outage_impact"])
}

func TestHandler_Execute_PriorityTiers(t *testing.T) {
	tests := []struct {
		name          string
		input         *Input
		expectedScore float64
		expectedLevel models.PriorityLevel
	}{
		{
			name: "P0 boundary at exactly 80",
			// 30 vip + 40 severity + 10 outage impact = 80, fresh ticket.
			input: &Input{
				Customer:       vipCustomer(),
				Classification: classification(models.CategoryNetworkOutage),
				ServiceStatus:  models.ServiceStatus{Health: models.HealthOutage},
				TicketAgeHours: 1,
			},
			expectedScore: 80,
			expectedLevel: models.PriorityP0,
		},
		{
			name: "P1 boundary at exactly 60",
			// 20 enterprise + 40 severity.
			input: &Input{
				Customer:       models.CustomerProfile{AccountTier: models.TierEnterprise},
				Classification: classification(models.CategoryNetworkOutage),
				ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
				TicketAgeHours: 1,
			},
			expectedScore: 60,
			expectedLevel: models.PriorityP1,
		},
		{
			name: "P2 boundary at exactly 40",
			// 30 vip + 10 billing severity.
			input: &Input{
				Customer:       models.CustomerProfile{IsVIP: true},
				Classification: classification(models.CategoryBillingDispute),
				ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
				TicketAgeHours: 1,
			},
			expectedScore: 40,
			expectedLevel: models.PriorityP2,
		},
		{
			name: "P3 below 40",
			// Consumer billing dispute, fresh, healthy: severity 10 only.
			input: &Input{
				Customer:       consumerCustomer(),
				Classification: classification(models.CategoryBillingDispute),
				ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
				TicketAgeHours: 1,
			},
			expectedScore: 10,
			expectedLevel: models.PriorityP3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := score(t, tt.input)
			assert.Equal(t, tt.expectedScore, out.Priority.Score)
			assert.Equal(t, tt.expectedLevel, out.Priority.Level)
		})
	}
}

func TestHandler_Execute_CustomerFactorsAreMutuallyExclusive(t *testing.T) {
	// VIP enterprise customer scores the VIP bonus only.
	out := score(t, &Input{
		Customer:       vipCustomer(),
		Classification: classification(models.CategoryBillingDispute),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
	})

	assert.Equal(t, 30.0, out.Priority.Factors["vip_bonus"])
	assert.NotContains(t, out.Priority.Factors, "enterprise_bonus")
}

func TestHandler_Execute_AgeBands(t *testing.T) {
	base := func(age float64) *Input {
		return &Input{
			Customer:       consumerCustomer(),
			Classification: classification(models.CategoryTechnicalProblem),
			ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
			TicketAgeHours: age,
		}
	}

	assert.NotContains(t, score(t, base(23.9)).Priority.Factors, "age_penalty")
	assert.Equal(t, 10.0, score(t, base(24)).Priority.Factors["age_penalty"])
	assert.Equal(t, 10.0, score(t, base(47.9)).Priority.Factors["age_penalty"])
	assert.Equal(t, 20.0, score(t, base(48)).Priority.Factors["age_penalty"])
}

func TestHandler_Execute_UnknownCategorySeverity(t *testing.T) {
	out := score(t, &Input{
		Customer:       consumerCustomer(),
		Classification: classification("Mystery Category"),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthHealthy},
	})

	assert.Equal(t, 20.0, out.Priority.Factors["severity"])
}

func TestHandler_Execute_DegradedImpact(t *testing.T) {
	out := score(t, &Input{
		Customer:       consumerCustomer(),
		Classification: classification(models.CategoryTechnicalProblem),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthDegraded},
	})

	assert.Equal(t, 5.0, out.Priority.Factors["degraded_impact"])
	assert.NotContains(t, out.Priority.Factors, "outage_impact")
}

func TestHandler_Execute_ReasoningListsFactors(t *testing.T) {
	out := score(t, &Input{
		Customer:       vipCustomer(),
		Classification: classification(models.CategoryNetworkOutage),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthOutage},
		TicketAgeHours: 72,
	})

	assert.Equal(t, "Score: 100.0 - vip_bonus=30, severity=40, age_penalty=20, outage_impact=10", out.Priority.Reasoning)
}

func TestHandler_Execute_Idempotent(t *testing.T) {
	input := &Input{
		Customer:       vipCustomer(),
		Classification: classification(models.CategoryAccountAccess),
		ServiceStatus:  models.ServiceStatus{Health: models.HealthDegraded},
		TicketAgeHours: 30,
	}

	first := score(t, input)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first.Priority, score(t, input).Priority)
	}
}
