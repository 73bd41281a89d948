// internal/tools/get-history/handler.go
package gethistory

import (
	"context"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"
)

const (
	ToolName = "get_historical_context"
)

type Handler struct {
	config *Config
	source HistorySource
	logger logger.Logger
}

func NewHandler(config *Config, source HistorySource, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		source: source,
		logger: log.WithFields(map[string]interface{}{"tool": ToolName}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = h.config.DefaultLimit
	}
	if limit > h.config.MaxLimit {
		limit = h.config.MaxLimit
	}

	tickets, err := h.source.Fetch(ctx, input.CustomerID, limit)
	if err != nil {
		// History is advisory context; an unreachable backend yields an
		// empty, explicitly unavailable context instead of an error.
		h.logger.Warn("history lookup failed, returning empty context", map[string]interface{}{
			"customerId": input.CustomerID,
			"error":      err,
		})
		return &Output{Context: models.HistoricalContext{Available: false}}, nil
	}

	hctx := models.HistoricalContext{
		RecentTickets: tickets,
		Available:     true,
	}

	seen := make(map[string]bool)
	for _, t := range tickets {
		if !seen[t.IssueType] {
			seen[t.IssueType] = true
			hctx.CommonIssues = append(hctx.CommonIssues, t.IssueType)
		}
		if t.Escalated {
			hctx.EscalationHistory = true
		}
	}

	h.logger.Debug("historical context assembled", map[string]interface{}{
		"customerId":    input.CustomerID,
		"recentTickets": len(hctx.RecentTickets),
		"escalated":     hctx.EscalationHistory,
	})

	return &Output{Context: hctx}, nil
}
