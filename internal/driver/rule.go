// internal/driver/rule.go

// Package driver provides the reasoning drivers that sit behind the
// orchestrator's Driver interface: a deterministic rule pipeline and an LLM
// gateway client.
package driver

import (
	"context"
	"fmt"
	"strings"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/orchestrator"
)

// RuleDriver runs the tools in a fixed order and synthesizes the decision
// text locally. It is the default driver and needs no external services.
type RuleDriver struct {
	logger logger.Logger
}

func NewRuleDriver(log logger.Logger) *RuleDriver {
	return &RuleDriver{
		logger: log.WithFields(map[string]interface{}{"driver": "rule"}),
	}
}

func (d *RuleDriver) Decide(ctx context.Context, prompt string, tools orchestrator.ToolInvoker) (string, error) {
	facts := parseTicketFacts(prompt)

	ev, err := gatherEvidence(ctx, facts, tools)
	if err != nil {
		return "", err
	}

	d.logger.Debug("evidence gathered", map[string]interface{}{
		"ticketId":     facts.TicketID,
		"category":     ev.Classification.PrimaryCategory,
		"remaining":    tools.Remaining(),
		"priorityDone": ev.Priority != nil,
		"routingDone":  ev.Routing != nil,
	})

	return synthesize(ev), nil
}

// synthesize renders the gathered evidence as the structured free-text
// verdict the orchestrator's parser expects. Stages that never ran are
// simply omitted; the orchestrator fills the gaps with defaults.
func synthesize(ev *evidence) string {
	var lines []string

	if ev.Routing != nil {
		lines = append(lines, fmt.Sprintf("Assigned Team: %s", ev.Routing.AssignedTeam))
	}
	if ev.Priority != nil {
		lines = append(lines, fmt.Sprintf("Priority Level: %s", ev.Priority.Level))
	}
	if ev.Routing != nil {
		lines = append(lines, fmt.Sprintf("Confidence Score: %.0f%%", ev.Routing.Confidence*100))
	}

	var reasons []string
	if ev.Priority != nil {
		reasons = append(reasons, ev.Priority.Reasoning)
	}
	if ev.Routing != nil {
		reasons = append(reasons, ev.Routing.Reasoning)
	}
	if ev.History.Available && ev.History.EscalationHistory {
		reasons = append(reasons, fmt.Sprintf("Customer has %d recent tickets including past escalations", len(ev.History.RecentTickets)))
	}
	if len(reasons) > 0 {
		lines = append(lines, fmt.Sprintf("Reasoning: %s", strings.Join(reasons, ". ")))
	}

	if ev.Routing != nil && ev.Routing.RequiresManualReview {
		lines = append(lines, "Manual review recommended before assignment.")
	}

	return strings.Join(lines, "\n")
}
