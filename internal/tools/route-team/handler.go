// internal/tools/route-team/handler.go
package routeteam

import (
	"context"
	"fmt"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"
)

const (
	ToolName = "route_to_team"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"tool": ToolName}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	cfg := h.config
	category := input.Classification.PrimaryCategory

	route, ok := cfg.Routes[category]
	if !ok {
		route = cfg.DefaultRoute
	}

	// Routing confidence compounds the table's base confidence with how sure
	// the classifier was.
	confidence := route.BaseConfidence * input.Classification.Confidence

	reasoning := fmt.Sprintf("Classified as %s with %.2f confidence, routing to %s",
		category, input.Classification.Confidence, route.Team)

	// An active outage corroborating a Network Outage classification overrides
	// the compounded confidence.
	if category == models.CategoryNetworkOutage && input.ServiceStatus.Health == models.HealthOutage {
		if cfg.OutageBoost > confidence {
			confidence = cfg.OutageBoost
		}
		reasoning += " - Active outage confirms network issue"
	}

	var alternatives []models.Team
	for _, secondary := range input.Classification.SecondaryCategories {
		if alt, ok := cfg.Routes[secondary]; ok && alt.Team != route.Team {
			alternatives = append(alternatives, alt.Team)
		}
	}

	requiresReview := confidence < cfg.ReviewThreshold
	if requiresReview {
		reasoning += " - Low confidence, flagged for manual review"
	}

	h.logger.Debug("team routed", map[string]interface{}{
		"team":         route.Team,
		"confidence":   confidence,
		"manualReview": requiresReview,
	})

	return &Output{Routing: models.RoutingDecision{
		AssignedTeam:         route.Team,
		Confidence:           confidence,
		AlternativeTeams:     alternatives,
		Reasoning:            reasoning,
		RequiresManualReview: requiresReview,
	}}, nil
}
