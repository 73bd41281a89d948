// internal/tools/classify-issue/handler_test.go
package classifyissue

import (
	"context"
	"testing"

	"ticket-routing/internal/common/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestHandler(t *testing.T) *Handler {
	return NewHandler(LoadConfig(), logger.NewTestLogger(t))
}

func classify(t *testing.T, text string) *Output {
	h := createTestHandler(t)
	out, err := h.Execute(context.Background(), &Input{TicketText: text})
	require.NoError(t, err)
	return out
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_CategoryDetection(t *testing.T) {
	tests := []struct {
		name             string
		text             string
		expectedCategory string
	}{
		{
			name:             "network outage keywords",
			text:             "Internet connection is down, total outage in our area",
			expectedCategory: "Network Outage",
		},
		{
			name:             "billing dispute keywords",
			text:             "I was overcharged on my invoice and want a refund",
			expectedCategory: "Billing Dispute",
		},
		{
			name:             "technical problem keywords",
			text:             "The router shows an error and is not working",
			expectedCategory: "Technical Problem",
		},
		{
			name:             "account access keywords",
			text:             "My password reset failed and my account is locked",
			expectedCategory: "Account Access",
		},
		{
			name:             "case insensitive matching",
			text:             "OUTAGE! NETWORK OFFLINE!",
			expectedCategory: "Network Outage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := classify(t, tt.text)
			assert.Equal(t, tt.expectedCategory, out.Classification.PrimaryCategory)
			assert.Greater(t, out.Classification.Confidence, 0.0)
			assert.NotEmpty(t, out.Classification.Keywords)
		})
	}
}

func TestHandler_Execute_ConfidenceIsCoverageRatio(t *testing.T) {
	// 3 of the 7 network keywords present: outage, down, network.
	out := classify(t, "outage: network is down")

	assert.Equal(t, "Network Outage", out.Classification.PrimaryCategory)
	assert.InDelta(t, 3.0/7.0, out.Classification.Confidence, 1e-9)
	assert.ElementsMatch(t, []string{"outage", "down", "network"}, out.Classification.Keywords)
}

func TestHandler_Execute_NoMatchFallsBackToDefault(t *testing.T) {
	out := classify(t, "hello there, just saying hi")

	assert.Equal(t, "Technical Problem", out.Classification.PrimaryCategory)
	assert.Equal(t, 0.5, out.Classification.Confidence)
	assert.Empty(t, out.Classification.Keywords)
	assert.Empty(t, out.Classification.SecondaryCategories)
}

func TestHandler_Execute_EmptyTextFallsBackToDefault(t *testing.T) {
	out := classify(t, "")

	assert.Equal(t, "Technical Problem", out.Classification.PrimaryCategory)
	assert.Equal(t, 0.5, out.Classification.Confidence)
}

func TestHandler_Execute_HigherCoverageWinsOnEqualMatchCounts(t *testing.T) {
	// One keyword each: network 1/7 beats billing 1/8.
	out := classify(t, "network charge")

	assert.Equal(t, "Network Outage", out.Classification.PrimaryCategory)
	assert.Contains(t, out.Classification.SecondaryCategories, "Billing Dispute")
}

func TestHandler_Execute_SecondaryCategoriesCappedAtTwo(t *testing.T) {
	// Hits all four categories: network, bill, error, password.
	out := classify(t, "network bill error password")

	assert.Len(t, out.Classification.SecondaryCategories, 2)
	assert.NotContains(t, out.Classification.SecondaryCategories, out.Classification.PrimaryCategory)
}

func TestHandler_Execute_SecondaryCategoriesOrderedByScore(t *testing.T) {
	// Network: outage, down, network, internet = 4/7 (primary).
	// Billing: bill, charge, refund = 3/8.
	// Account: password = 1/8.
	out := classify(t, "outage down network internet bill charge refund password")

	require.Equal(t, "Network Outage", out.Classification.PrimaryCategory)
	require.Len(t, out.Classification.SecondaryCategories, 2)
	assert.Equal(t, "Billing Dispute", out.Classification.SecondaryCategories[0])
	assert.Equal(t, "Account Access", out.Classification.SecondaryCategories[1])
}

func TestHandler_Execute_Deterministic(t *testing.T) {
	text := "router error, connection down, please refund the charge"

	first := classify(t, text)
	for i := 0; i < 5; i++ {
		again := classify(t, text)
		assert.Equal(t, first.Classification, again.Classification)
	}
}
