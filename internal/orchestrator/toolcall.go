// internal/orchestrator/toolcall.go
package orchestrator

import (
	"context"

	calculatepriority "ticket-routing/internal/tools/calculate-priority"
	checkcustomer "ticket-routing/internal/tools/check-customer"
	checkservicestatus "ticket-routing/internal/tools/check-service-status"
	classifyissue "ticket-routing/internal/tools/classify-issue"
	extractentities "ticket-routing/internal/tools/extract-entities"
	gethistory "ticket-routing/internal/tools/get-history"
	routeteam "ticket-routing/internal/tools/route-team"
)

// ToolCall is a tagged union over the tool inputs. Exactly one field must be
// set; Name reports which one.
type ToolCall struct {
	ClassifyIssue      *classifyissue.Input
	ExtractEntities    *extractentities.Input
	CheckCustomer      *checkcustomer.Input
	CheckServiceStatus *checkservicestatus.Input
	GetHistory         *gethistory.Input
	CalculatePriority  *calculatepriority.Input
	RouteTeam          *routeteam.Input
}

// Name returns the tool the call addresses, or "" when no variant is set.
func (c ToolCall) Name() string {
	switch {
	case c.ClassifyIssue != nil:
		return classifyissue.ToolName
	case c.ExtractEntities != nil:
		return extractentities.ToolName
	case c.CheckCustomer != nil:
		return checkcustomer.ToolName
	case c.CheckServiceStatus != nil:
		return checkservicestatus.ToolName
	case c.GetHistory != nil:
		return gethistory.ToolName
	case c.CalculatePriority != nil:
		return calculatepriority.ToolName
	case c.RouteTeam != nil:
		return routeteam.ToolName
	default:
		return ""
	}
}

// ToolResult carries one tool's outcome back to the driver. A failed tool
// yields Unavailable=true with the error text instead of aborting the cycle.
type ToolResult struct {
	Tool        string      `json:"tool"`
	Payload     interface{} `json:"payload,omitempty"`
	Unavailable bool        `json:"unavailable"`
	Error       string      `json:"error,omitempty"`
}

// ToolInvoker is the bounded tool surface handed to a Driver for the
// duration of one decision cycle.
type ToolInvoker interface {
	Invoke(ctx context.Context, call ToolCall) (*ToolResult, error)
	Remaining() int
}

// Driver produces the free-text routing decision for one ticket, calling
// tools through the invoker as it sees fit.
type Driver interface {
	Decide(ctx context.Context, prompt string, tools ToolInvoker) (string, error)
}

// Narrow per-tool interfaces so tests can stub individual tools.
type (
	IssueClassifier interface {
		Execute(ctx context.Context, input *classifyissue.Input) (*classifyissue.Output, error)
	}
	EntityExtractor interface {
		Execute(ctx context.Context, input *extractentities.Input) (*extractentities.Output, error)
	}
	CustomerChecker interface {
		Execute(ctx context.Context, input *checkcustomer.Input) (*checkcustomer.Output, error)
	}
	ServiceStatusChecker interface {
		Execute(ctx context.Context, input *checkservicestatus.Input) (*checkservicestatus.Output, error)
	}
	HistoryFetcher interface {
		Execute(ctx context.Context, input *gethistory.Input) (*gethistory.Output, error)
	}
	PriorityCalculator interface {
		Execute(ctx context.Context, input *calculatepriority.Input) (*calculatepriority.Output, error)
	}
	TeamRouter interface {
		Execute(ctx context.Context, input *routeteam.Input) (*routeteam.Output, error)
	}
)

// Toolset bundles the seven decision tools.
type Toolset struct {
	ClassifyIssue      IssueClassifier
	ExtractEntities    EntityExtractor
	CheckCustomer      CustomerChecker
	CheckServiceStatus ServiceStatusChecker
	GetHistory         HistoryFetcher
	CalculatePriority  PriorityCalculator
	RouteTeam          TeamRouter
}
