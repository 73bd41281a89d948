// internal/orchestrator/orchestrator.go

// Package orchestrator runs the decision cycle for one support ticket: it
// validates input, hands a bounded tool invoker to the reasoning driver,
// parses the driver's free-text verdict, and falls back to a safe default
// when the driver fails.
package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/common/metrics"
	"ticket-routing/internal/common/observability"
	"ticket-routing/internal/models"

	commonerrors "ticket-routing/internal/common/errors"

	"github.com/google/uuid"
)

// State tracks where a decision cycle is. Transitions are linear:
// Idle -> AwaitingToolCalls -> Synthesizing -> Complete, with Failed
// reachable from AwaitingToolCalls.
type State string

const (
	StateIdle              State = "IDLE"
	StateAwaitingToolCalls State = "AWAITING_TOOL_CALLS"
	StateSynthesizing      State = "SYNTHESIZING"
	StateComplete          State = "COMPLETE"
	StateFailed            State = "FAILED"
)

// Defaults applied when the driver response omits a field.
const (
	defaultTeam       = models.TeamTechnicalSupport
	defaultPriority   = models.PriorityP2
	defaultConfidence = 70.0
)

type Orchestrator struct {
	config *Config
	driver Driver
	tools  *Toolset
	obs    *observability.Observability
	logger logger.Logger
}

// New builds an orchestrator. obs may be nil when OTel metrics are disabled.
func New(config *Config, driver Driver, tools *Toolset, obs *observability.Observability, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		config: config,
		driver: driver,
		tools:  tools,
		obs:    obs,
		logger: log.WithFields(map[string]interface{}{"component": "orchestrator"}),
	}
}

// ProcessTicket runs one full decision cycle. Invalid tickets return a
// validation error; every other failure yields a fallback decision, so the
// returned error is non-nil only for invalid input.
func (o *Orchestrator) ProcessTicket(ctx context.Context, ticket models.Ticket) (*models.FinalDecision, error) {
	start := time.Now()

	if err := ticket.Validate(); err != nil {
		return nil, commonerrors.NewTicketInvalidError(err.Error())
	}

	log := o.logger.WithFields(map[string]interface{}{"ticketId": ticket.TicketID})
	o.transition(log, StateIdle, StateAwaitingToolCalls)

	metrics.DecisionsActive.Inc()
	defer metrics.DecisionsActive.Dec()

	cycleCtx, cancel := context.WithTimeout(ctx, o.config.DecisionTimeout)
	defer cancel()

	sess := newSession(o.tools, o.config.MaxToolCalls, log)
	prompt := buildPrompt(ticket, ticket.AgeHours(start))

	response, err := o.driver.Decide(cycleCtx, prompt, sess)

	var decision *models.FinalDecision
	outcome := "complete"
	if err != nil {
		o.transition(log, StateAwaitingToolCalls, StateFailed)
		category := commonerrors.Categorize(err)
		log.WithError(err).Warn("driver failed, using fallback decision", map[string]interface{}{
			"category":  string(category),
			"retryable": category.IsRetryable(),
		})
		decision = fallbackDecision(ticket, category, err)
		metrics.DecisionsFallback.WithLabelValues(string(category)).Inc()
		outcome = "fallback"
	} else {
		o.transition(log, StateAwaitingToolCalls, StateSynthesizing)
		decision = o.assemble(ticket, response, log)
		o.transition(log, StateSynthesizing, StateComplete)
		metrics.DecisionsCompleted.WithLabelValues(string(decision.AssignedTeam), string(decision.PriorityLevel)).Inc()
	}

	elapsed := time.Since(start)
	decision.ProcessingTimeMs = float64(elapsed.Microseconds()) / 1000.0

	if decision.RequiresManualReview {
		metrics.ManualReviews.Inc()
	}
	metrics.DecisionDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if o.obs != nil {
		o.obs.RecordDecision(ctx, outcome)
		o.obs.RecordDecisionDuration(ctx, elapsed, outcome)
	}

	log.Info("decision cycle finished", map[string]interface{}{
		"outcome":      outcome,
		"team":         string(decision.AssignedTeam),
		"priority":     string(decision.PriorityLevel),
		"confidence":   decision.ConfidenceScore,
		"manualReview": decision.RequiresManualReview,
		"durationMs":   decision.ProcessingTimeMs,
	})

	return decision, nil
}

// assemble turns the driver's free-text response into a FinalDecision.
// Fields the matchers cannot find are defaulted, and the defaulted field
// names are appended to the reasoning for auditability.
func (o *Orchestrator) assemble(ticket models.Ticket, response string, log logger.Logger) *models.FinalDecision {
	lower := strings.ToLower(response)
	var defaulted []string

	team, ok := matchTeam(lower)
	if !ok {
		team = defaultTeam
		defaulted = append(defaulted, "team")
	}
	priority, ok := matchPriority(lower)
	if !ok {
		priority = defaultPriority
		defaulted = append(defaulted, "priority")
	}
	confidence, ok := matchConfidence(lower)
	if !ok {
		confidence = defaultConfidence
		defaulted = append(defaulted, "confidence")
	} else if clamped := clampConfidence(confidence); clamped != confidence {
		log.Warn("driver confidence out of range, clamped", map[string]interface{}{
			"parsed":  confidence,
			"clamped": clamped,
		})
		confidence = clamped
	}

	reasoning := strings.TrimSpace(response)
	if len(defaulted) > 0 {
		log.Warn("driver response missing fields, defaults applied", map[string]interface{}{
			"fields": defaulted,
		})
		reasoning += fmt.Sprintf(" [defaults applied: %s]", strings.Join(defaulted, ", "))
	}

	return &models.FinalDecision{
		DecisionID:           uuid.NewString(),
		TicketID:             ticket.TicketID,
		CustomerID:           ticket.CustomerID,
		AssignedTeam:         team,
		PriorityLevel:        priority,
		ConfidenceScore:      confidence,
		Reasoning:            reasoning,
		RequiresManualReview: mentionsManualReview(lower),
		Timestamp:            time.Now().UTC(),
	}
}

func (o *Orchestrator) transition(log logger.Logger, from, to State) {
	log.Debug("state transition", map[string]interface{}{
		"from": string(from),
		"to":   string(to),
	})
}

func buildPrompt(ticket models.Ticket, ageHours float64) string {
	return fmt.Sprintf(`Route this support ticket:

Ticket ID: %s
Customer ID: %s
Subject: %s
Description: %s
Ticket Age: %.1f hours

Analyze this ticket and determine:
1. The correct support team to handle it
2. The appropriate priority level
3. Your confidence in this decision

Use the available tools to gather information and make an informed decision.
Provide clear reasoning for your routing decision.`,
		ticket.TicketID, ticket.CustomerID, ticket.Subject, ticket.Description, ageHours)
}
