// internal/orchestrator/session.go
package orchestrator

import (
	"context"
	"fmt"
	"sync"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/common/metrics"

	commonerrors "ticket-routing/internal/common/errors"
)

// session is the per-cycle ToolInvoker. It enforces the tool-call budget and
// converts tool failures into Unavailable results so a single flaky backend
// never aborts the decision cycle.
type session struct {
	tools  *Toolset
	budget int
	logger logger.Logger

	mu   sync.Mutex
	used int
}

func newSession(tools *Toolset, budget int, log logger.Logger) *session {
	return &session{
		tools:  tools,
		budget: budget,
		logger: log,
	}
}

func (s *session) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if left := s.budget - s.used; left > 0 {
		return left
	}
	return 0
}

func (s *session) Invoke(ctx context.Context, call ToolCall) (*ToolResult, error) {
	name := call.Name()
	if name == "" {
		return nil, fmt.Errorf("tool call does not address any tool")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.used >= s.budget {
		s.mu.Unlock()
		metrics.ToolCalls.WithLabelValues(name, "budget_exhausted").Inc()
		return nil, commonerrors.NewToolBudgetReachedError(s.budget)
	}
	s.used++
	s.mu.Unlock()

	payload, err := s.dispatch(ctx, call)
	if err != nil {
		serr := commonerrors.NewToolUnavailableError(name, err)
		s.logger.WithError(serr).Warn("tool unavailable", map[string]interface{}{"tool": name})
		metrics.ToolCalls.WithLabelValues(name, "unavailable").Inc()
		return &ToolResult{Tool: name, Unavailable: true, Error: err.Error()}, nil
	}

	metrics.ToolCalls.WithLabelValues(name, "success").Inc()
	return &ToolResult{Tool: name, Payload: payload}, nil
}

func (s *session) dispatch(ctx context.Context, call ToolCall) (interface{}, error) {
	switch {
	case call.ClassifyIssue != nil:
		return s.tools.ClassifyIssue.Execute(ctx, call.ClassifyIssue)
	case call.ExtractEntities != nil:
		return s.tools.ExtractEntities.Execute(ctx, call.ExtractEntities)
	case call.CheckCustomer != nil:
		return s.tools.CheckCustomer.Execute(ctx, call.CheckCustomer)
	case call.CheckServiceStatus != nil:
		return s.tools.CheckServiceStatus.Execute(ctx, call.CheckServiceStatus)
	case call.GetHistory != nil:
		return s.tools.GetHistory.Execute(ctx, call.GetHistory)
	case call.CalculatePriority != nil:
		return s.tools.CalculatePriority.Execute(ctx, call.CalculatePriority)
	case call.RouteTeam != nil:
		return s.tools.RouteTeam.Execute(ctx, call.RouteTeam)
	default:
		return nil, fmt.Errorf("tool call does not address any tool")
	}
}
