// internal/orchestrator/parser_test.go
package orchestrator

import (
	"strings"
	"testing"

	"ticket-routing/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Team Matcher Tests
// ==========================

func TestMatchTeam(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		expectedTeam models.Team
		expectedOK   bool
	}{
		{"full team name", "Routing this to Network Operations immediately", models.TeamNetworkOperations, true},
		{"short form", "network ops should own this", models.TeamNetworkOperations, true},
		{"billing support", "Assigned Team: Billing Support", models.TeamBillingSupport, true},
		{"billing alone", "this is a billing matter", models.TeamBillingSupport, true},
		{"technical support", "Technical Support is the right fit", models.TeamTechnicalSupport, true},
		{"account management", "Assigned Team: Account Management", models.TeamAccountManagement, true},
		{"account alone", "the account team should verify", models.TeamAccountManagement, true},
		{"no team mentioned", "unable to reach a verdict", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, ok := matchTeam(strings.ToLower(tt.text))
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedTeam, team)
		})
	}
}

func TestMatchTeam_NetworkWinsOverLaterMentions(t *testing.T) {
	team, ok := matchTeam("billing raised it but network operations must fix the outage")
	assert.True(t, ok)
	assert.Equal(t, models.TeamNetworkOperations, team)
}

// ==========================
// Priority Matcher Tests
// ==========================

func TestMatchPriority(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedLevel models.PriorityLevel
		expectedOK    bool
	}{
		{"p0 token", "Priority Level: P0", models.PriorityP0, true},
		{"critical keyword", "this is a critical situation", models.PriorityP0, true},
		{"p1 token", "priority: p1", models.PriorityP1, true},
		{"high keyword", "treat with high urgency", models.PriorityP1, true},
		{"p2 token", "Priority Level: P2", models.PriorityP2, true},
		{"medium keyword", "medium urgency", models.PriorityP2, true},
		{"p3 token", "priority p3", models.PriorityP3, true},
		{"low keyword", "low urgency inquiry", models.PriorityP3, true},
		{"nothing", "unable to reach a verdict", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := matchPriority(strings.ToLower(tt.text))
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedLevel, level)
		})
	}
}

// ==========================
// Confidence Matcher Tests
// ==========================

func TestMatchConfidence(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedValue float64
		expectedOK    bool
	}{
		{"labeled score", "confidence score: 85", 85, true},
		{"score with percent", "confidence score: 72.5%", 72.5, true},
		{"bare confidence with percent", "confidence: 60%", 60, true},
		{"bare confidence without unit is ignored", "confidence: 60", 0, false},
		{"no figure", "fairly confident overall", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := matchConfidence(tt.text)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedValue, value)
		})
	}
}

func TestMatchConfidence_TakesHighestFigure(t *testing.T) {
	// Intermediate tool confidences restated before the final verdict.
	value, ok := matchConfidence("confidence score: 45 at first pass, final confidence score: 90%")
	assert.True(t, ok)
	assert.Equal(t, 90.0, value)
}

// ==========================
// Manual Review Tests
// ==========================

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 100.0, clampConfidence(250))
	assert.Equal(t, 0.0, clampConfidence(-5))
	assert.Equal(t, 85.0, clampConfidence(85))
}

func TestMentionsManualReview(t *testing.T) {
	assert.True(t, mentionsManualReview("manual review required"))
	assert.True(t, mentionsManualReview("flagged for a human"))
	assert.False(t, mentionsManualReview("confident assignment, no follow-up needed"))
}
