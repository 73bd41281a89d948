// Package errors provides standardized error handling for the routing decision engine.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeTicketInvalid     ErrorCode = "TICKET_INVALID"
	ErrCodeBatchInvalid      ErrorCode = "BATCH_INVALID"
	ErrCodeToolUnavailable   ErrorCode = "TOOL_UNAVAILABLE"
	ErrCodeToolBudgetReached ErrorCode = "TOOL_BUDGET_REACHED"

	ErrCodeDriverRateLimited  ErrorCode = "DRIVER_RATE_LIMITED"
	ErrCodeDriverAccessDenied ErrorCode = "DRIVER_ACCESS_DENIED"
	ErrCodeDriverUnavailable  ErrorCode = "DRIVER_UNAVAILABLE"
	ErrCodeDriverNetwork      ErrorCode = "DRIVER_NETWORK_ERROR"
	ErrCodeDriverTimeout      ErrorCode = "DRIVER_TIMEOUT"

	ErrCodeDatabaseConnectionFailed ErrorCode = "DATABASE_CONNECTION_FAILED"
	ErrCodeDecisionInsertFailed     ErrorCode = "DECISION_INSERT_FAILED"
	ErrCodeSearchQueryFailed        ErrorCode = "SEARCH_QUERY_FAILED"
	ErrCodeNotificationSendFailed   ErrorCode = "NOTIFICATION_SEND_FAILED"
)

// Sentinel errors used for classification across package boundaries. Callers
// wrap these with %w and the orchestrator maps them to a FailureCategory.
var (
	ErrInvalidTicket       = errors.New(string(ErrCodeTicketInvalid))
	ErrBudgetExhausted     = errors.New(string(ErrCodeToolBudgetReached))
	ErrRateLimited         = errors.New(string(ErrCodeDriverRateLimited))
	ErrAccessDenied        = errors.New(string(ErrCodeDriverAccessDenied))
	ErrUpstreamUnavailable = errors.New(string(ErrCodeDriverUnavailable))
	ErrNetwork             = errors.New(string(ErrCodeDriverNetwork))
)

// StandardError represents a structured application error. The cause chain
// is preserved so errors.Is against the sentinels above keeps working.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`

	cause error
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

func (e *StandardError) Unwrap() error {
	return e.cause
}

// ==========================
// 2. Failure Categories
// ==========================

// FailureCategory buckets a decision-cycle failure for fallback reasoning
// and metrics. Every error maps to exactly one category.
type FailureCategory string

const (
	FailureRateLimited         FailureCategory = "RATE_LIMITED"
	FailureAccessDenied        FailureCategory = "ACCESS_DENIED"
	FailureUpstreamUnavailable FailureCategory = "UPSTREAM_UNAVAILABLE"
	FailureNetwork             FailureCategory = "NETWORK_ERROR"
	FailureUnknown             FailureCategory = "UNKNOWN"
)

// Categorize maps an error to its failure category. Deadline and transport
// errors count as network failures; anything unrecognized is UNKNOWN.
func Categorize(err error) FailureCategory {
	switch {
	case err == nil:
		return FailureUnknown
	case errors.Is(err, ErrRateLimited):
		return FailureRateLimited
	case errors.Is(err, ErrAccessDenied):
		return FailureAccessDenied
	case errors.Is(err, ErrUpstreamUnavailable):
		return FailureUpstreamUnavailable
	case errors.Is(err, ErrNetwork),
		errors.Is(err, context.DeadlineExceeded),
		isNetError(err):
		return FailureNetwork
	default:
		return FailureUnknown
	}
}

func isNetError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr)
}

// IsRetryable reports whether a failure in this category may succeed on retry.
func (c FailureCategory) IsRetryable() bool {
	switch c {
	case FailureRateLimited, FailureUpstreamUnavailable, FailureNetwork:
		return true
	default:
		return false
	}
}

// ==========================
// 3. Error Constructors
// ==========================

// NewTicketInvalidError creates a non-retryable ticket validation error.
func NewTicketInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTicketInvalid,
		Message:   "Ticket failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     ErrInvalidTicket,
	}
}

// NewToolUnavailableError creates a retryable tool failure error.
func NewToolUnavailableError(tool string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeToolUnavailable,
		Message:   "Tool invocation failed",
		Details:   fmt.Sprintf("tool: %s, error: %s", tool, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewToolBudgetReachedError creates a non-retryable budget error.
func NewToolBudgetReachedError(limit int) *StandardError {
	return &StandardError{
		Code:      ErrCodeToolBudgetReached,
		Message:   "Tool call budget exhausted",
		Details:   fmt.Sprintf("limit: %d", limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     ErrBudgetExhausted,
	}
}

// NewDriverRateLimitedError creates a retryable driver rate-limit error.
func NewDriverRateLimitedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDriverRateLimited,
		Message:   "Reasoning driver rate limited",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     ErrRateLimited,
	}
}

// NewDriverAccessDeniedError creates a non-retryable driver auth error.
func NewDriverAccessDeniedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeDriverAccessDenied,
		Message:   "Reasoning driver rejected credentials",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
		cause:     ErrAccessDenied,
	}
}

// NewDriverUnavailableError creates a retryable driver availability error.
func NewDriverUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDriverUnavailable,
		Message:   "Reasoning driver unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     ErrUpstreamUnavailable,
	}
}

// NewDriverTimeoutError creates a retryable driver timeout error. It unwraps
// to context.DeadlineExceeded so Categorize buckets it as a network failure.
func NewDriverTimeoutError(timeout time.Duration) *StandardError {
	return &StandardError{
		Code:      ErrCodeDriverTimeout,
		Message:   "Reasoning driver timeout",
		Details:   fmt.Sprintf("deadline: %s", timeout),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     context.DeadlineExceeded,
	}
}

// NewDatabaseConnectionFailedError creates a retryable database connection error.
func NewDatabaseConnectionFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseConnectionFailed,
		Message:   "Database connection error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewDecisionInsertFailedError creates a retryable decision persistence error.
func NewDecisionInsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDecisionInsertFailed,
		Message:   "Decision insert operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewSearchQueryFailedError creates a retryable history search error.
func NewSearchQueryFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSearchQueryFailed,
		Message:   "History search query error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}

// NewNotificationSendFailedError creates a retryable notification send error.
func NewNotificationSendFailedError(channel string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotificationSendFailed,
		Message:   "Notification delivery failed",
		Details:   fmt.Sprintf("channel: %s, error: %s", channel, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
		cause:     err,
	}
}
