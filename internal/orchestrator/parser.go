// internal/orchestrator/parser.go
package orchestrator

import (
	"regexp"
	"strconv"
	"strings"

	"ticket-routing/internal/models"
)

// Driver responses are free text, so extraction is a chain of independent
// matchers. Each returns (value, ok); missing fields are defaulted at
// assembly, never here, so the audit of what was defaulted stays accurate.

var (
	confidenceScoreRe = regexp.MustCompile(`confidence\s*score[:\s]+(\d+(?:\.\d+)?)\s*[/%]?`)
	confidenceBareRe  = regexp.MustCompile(`confidence[:\s]+(\d+(?:\.\d+)?)\s*[/%]`)
)

func matchTeam(lower string) (models.Team, bool) {
	switch {
	case strings.Contains(lower, "network operations"), strings.Contains(lower, "network ops"):
		return models.TeamNetworkOperations, true
	case strings.Contains(lower, "billing support"), strings.Contains(lower, "billing"):
		return models.TeamBillingSupport, true
	case strings.Contains(lower, "technical support"), strings.Contains(lower, "technical"):
		return models.TeamTechnicalSupport, true
	case strings.Contains(lower, "account management"), strings.Contains(lower, "account"):
		return models.TeamAccountManagement, true
	default:
		return "", false
	}
}

func matchPriority(lower string) (models.PriorityLevel, bool) {
	switch {
	case strings.Contains(lower, "p0"), strings.Contains(lower, "critical"):
		return models.PriorityP0, true
	case strings.Contains(lower, "p1"), strings.Contains(lower, "high"):
		return models.PriorityP1, true
	case strings.Contains(lower, "p2"), strings.Contains(lower, "medium"):
		return models.PriorityP2, true
	case strings.Contains(lower, "p3"), strings.Contains(lower, "low"):
		return models.PriorityP3, true
	default:
		return "", false
	}
}

// matchConfidence returns the highest confidence figure in the text. A
// response that restates intermediate tool confidences before the final one
// should resolve to the final, which in practice is the largest.
func matchConfidence(lower string) (float64, bool) {
	matches := confidenceScoreRe.FindAllStringSubmatch(lower, -1)
	if len(matches) == 0 {
		matches = confidenceBareRe.FindAllStringSubmatch(lower, -1)
	}
	if len(matches) == 0 {
		return 0, false
	}

	best := 0.0
	found := false
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

// clampConfidence bounds a parsed confidence to the 0-100 scale. Drivers are
// asked for a percentage but free text offers no guarantee.
func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func mentionsManualReview(lower string) bool {
	return strings.Contains(lower, "manual review") || strings.Contains(lower, "flag")
}
