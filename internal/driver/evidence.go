// internal/driver/evidence.go
package driver

import (
	"context"
	"errors"

	"ticket-routing/internal/models"
	"ticket-routing/internal/orchestrator"

	commonerrors "ticket-routing/internal/common/errors"

	calculatepriority "ticket-routing/internal/tools/calculate-priority"
	checkcustomer "ticket-routing/internal/tools/check-customer"
	checkservicestatus "ticket-routing/internal/tools/check-service-status"
	classifyissue "ticket-routing/internal/tools/classify-issue"
	extractentities "ticket-routing/internal/tools/extract-entities"
	gethistory "ticket-routing/internal/tools/get-history"
	routeteam "ticket-routing/internal/tools/route-team"
)

// evidence accumulates tool outputs over one decision cycle. Priority and
// Routing stay nil when their tools could not run; everything else falls back
// to a safe default so later stages always have an input.
type evidence struct {
	Classification models.IssueClassification  `json:"classification"`
	Entities       models.ExtractedEntities    `json:"entities"`
	Customer       models.CustomerProfile      `json:"customer"`
	Status         models.ServiceStatus        `json:"service_status"`
	History        models.HistoricalContext    `json:"history"`
	Priority       *models.PriorityCalculation `json:"priority,omitempty"`
	Routing        *models.RoutingDecision     `json:"routing,omitempty"`
}

// gatherEvidence runs the fixed tool pipeline: classify, extract, customer,
// status, history, priority, route. Unavailable tools are tolerated with
// defaults; an exhausted budget stops the pipeline where it stands. Only
// context errors propagate.
func gatherEvidence(ctx context.Context, facts ticketFacts, tools orchestrator.ToolInvoker) (*evidence, error) {
	ev := &evidence{
		Classification: models.IssueClassification{
			PrimaryCategory: models.CategoryTechnicalProblem,
			Confidence:      0.5,
		},
		Customer: models.DefaultCustomerProfile(facts.CustomerID),
		Status:   models.ServiceStatus{Health: models.HealthHealthy},
	}

	steps := []func(context.Context, orchestrator.ToolInvoker) error{
		func(ctx context.Context, tools orchestrator.ToolInvoker) error {
			res, err := tools.Invoke(ctx, orchestrator.ToolCall{
				ClassifyIssue: &classifyissue.Input{TicketText: facts.text()},
			})
			if err != nil {
				return err
			}
			if out, ok := res.Payload.(*classifyissue.Output); ok {
				ev.Classification = out.Classification
			}
			return nil
		},
		func(ctx context.Context, tools orchestrator.ToolInvoker) error {
			res, err := tools.Invoke(ctx, orchestrator.ToolCall{
				ExtractEntities: &extractentities.Input{TicketText: facts.text()},
			})
			if err != nil {
				return err
			}
			if out, ok := res.Payload.(*extractentities.Output); ok {
				ev.Entities = out.Entities
			}
			return nil
		},
		func(ctx context.Context, tools orchestrator.ToolInvoker) error {
			res, err := tools.Invoke(ctx, orchestrator.ToolCall{
				CheckCustomer: &checkcustomer.Input{CustomerID: facts.CustomerID},
			})
			if err != nil {
				return err
			}
			if out, ok := res.Payload.(*checkcustomer.Output); ok {
				ev.Customer = out.Profile
			}
			return nil
		},
		func(ctx context.Context, tools orchestrator.ToolInvoker) error {
			res, err := tools.Invoke(ctx, orchestrator.ToolCall{
				CheckServiceStatus: &checkservicestatus.Input{ServiceIDs: ev.Entities.ServiceIDs},
			})
			if err != nil {
				return err
			}
			if out, ok := res.Payload.(*checkservicestatus.Output); ok {
				ev.Status = out.Status
			}
			return nil
		},
		func(ctx context.Context, tools orchestrator.ToolInvoker) error {
			res, err := tools.Invoke(ctx, orchestrator.ToolCall{
				GetHistory: &gethistory.Input{CustomerID: facts.CustomerID},
			})
			if err != nil {
				return err
			}
			if out, ok := res.Payload.(*gethistory.Output); ok {
				ev.History = out.Context
			}
			return nil
		},
		func(ctx context.Context, tools orchestrator.ToolInvoker) error {
			res, err := tools.Invoke(ctx, orchestrator.ToolCall{
				CalculatePriority: &calculatepriority.Input{
					Customer:       ev.Customer,
					Classification: ev.Classification,
					ServiceStatus:  ev.Status,
					TicketAgeHours: facts.AgeHours,
				},
			})
			if err != nil {
				return err
			}
			if out, ok := res.Payload.(*calculatepriority.Output); ok {
				ev.Priority = &out.Priority
			}
			return nil
		},
		func(ctx context.Context, tools orchestrator.ToolInvoker) error {
			res, err := tools.Invoke(ctx, orchestrator.ToolCall{
				RouteTeam: &routeteam.Input{
					Classification: ev.Classification,
					Entities:       ev.Entities,
					ServiceStatus:  ev.Status,
				},
			})
			if err != nil {
				return err
			}
			if out, ok := res.Payload.(*routeteam.Output); ok {
				ev.Routing = &out.Routing
			}
			return nil
		},
	}

	for _, step := range steps {
		if err := step(ctx, tools); err != nil {
			if errors.Is(err, commonerrors.ErrBudgetExhausted) {
				return ev, nil
			}
			return nil, err
		}
	}
	return ev, nil
}
