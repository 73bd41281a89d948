// internal/tools/calculate-priority/handler.go
package calculatepriority

import (
	"context"
	"fmt"
	"strings"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"
)

const (
	ToolName = "calculate_priority"
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
	score := 0.0
	factors := make(map[string]float64)
	var order []string

	addFactor := func(name string, value float64) {
		score += value
		factors[name] = value
		order = append(order, name)
	}

	// Customer standing (up to 30). VIP trumps tier.
	switch {
	case input.Customer.IsVIP:
		addFactor("vip_bonus", cfg.VIPBonus)
	case input.Customer.AccountTier == models.TierEnterprise:
		addFactor("enterprise_bonus", cfg.EnterpriseBonus)
	case input.Customer.AccountTier == models.TierBusiness:
		addFactor("business_bonus", cfg.BusinessBonus)
	}

	// Issue severity (up to 40). Unrecognized categories score mid-range.
	severity, ok := cfg.SeverityByCategory[input.Classification.PrimaryCategory]
	if !ok {
		severity = cfg.UnknownSeverity
	}
	addFactor("severity", severity)

	// Ticket age (up to 20).
	if input.TicketAgeHours >= cfg.StaleAgeHours {
		addFactor("age_penalty", cfg.StaleAgeScore)
	} else if input.TicketAgeHours >= cfg.AgingAgeHours {
		addFactor("age_penalty", cfg.AgingAgeScore)
	}

	// Service impact (up to 10).
	switch input.ServiceStatus.Health {
	case models.HealthOutage:
		addFactor("outage_impact", cfg.OutageImpact)
	case models.HealthDegraded:
		addFactor("degraded_impact", cfg.DegradedImpact)
	}

	var level models.PriorityLevel
	switch {
	case score >= cfg.P0Threshold:
		level = models.PriorityP0
	case score >= cfg.P1Threshold:
		level = models.PriorityP1
	case score >= cfg.P2Threshold:
		level = models.PriorityP2
	default:
		level = models.PriorityP3
	}

	parts := make([]string, 0, len(order))
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%s=%g", name, factors[name]))
	}
	reasoning := fmt.Sprintf("Score: %.1f - %s", score, strings.Join(parts, ", "))

	h.logger.Debug("priority calculated", map[string]interface{}{
		"level": level,
		"score": score,
	})

	return &Output{Priority: models.PriorityCalculation{
		Level:     level,
		Score:     score,
		Factors:   factors,
		Reasoning: reasoning,
	}}, nil
}
