package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Constructor Tests
// ==========================

func TestConstructorsUnwrapSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      *StandardError
		sentinel error
	}{
		{"ticket invalid", NewTicketInvalidError("missing ticket id"), ErrInvalidTicket},
		{"budget reached", NewToolBudgetReachedError(10), ErrBudgetExhausted},
		{"driver rate limited", NewDriverRateLimitedError("status 429"), ErrRateLimited},
		{"driver access denied", NewDriverAccessDeniedError("status 403"), ErrAccessDenied},
		{"driver unavailable", NewDriverUnavailableError(errors.New("status 503")), ErrUpstreamUnavailable},
		{"driver timeout", NewDriverTimeoutError(5 * time.Second), context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestConstructorsPreserveCause(t *testing.T) {
	cause := errors.New("connection refused")
	for _, serr := range []*StandardError{
		NewToolUnavailableError("classify_issue", cause),
		NewDatabaseConnectionFailedError(cause),
		NewDecisionInsertFailedError(cause),
		NewSearchQueryFailedError(cause),
		NewNotificationSendFailedError("email", cause),
	} {
		assert.True(t, errors.Is(serr, cause), "code %s", serr.Code)
		assert.Contains(t, serr.Details, "connection refused")
	}
}

func TestStandardError_ErrorFormat(t *testing.T) {
	err := NewToolBudgetReachedError(10)
	assert.Equal(t, "StandardError[TOOL_BUDGET_REACHED]: Tool call budget exhausted", err.Error())
}

// ==========================
// Categorization Tests
// ==========================

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected FailureCategory
	}{
		{"rate limited sentinel", fmt.Errorf("gateway: %w", ErrRateLimited), FailureRateLimited},
		{"access denied constructor", NewDriverAccessDeniedError("status 401"), FailureAccessDenied},
		{"upstream constructor", NewDriverUnavailableError(errors.New("status 502")), FailureUpstreamUnavailable},
		{"timeout constructor", NewDriverTimeoutError(time.Second), FailureNetwork},
		{"deadline exceeded", context.DeadlineExceeded, FailureNetwork},
		{"plain error", errors.New("boom"), FailureUnknown},
		{"nil", nil, FailureUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.err))
		})
	}
}

func TestFailureCategory_IsRetryable(t *testing.T) {
	assert.True(t, FailureRateLimited.IsRetryable())
	assert.True(t, FailureUpstreamUnavailable.IsRetryable())
	assert.True(t, FailureNetwork.IsRetryable())
	assert.False(t, FailureAccessDenied.IsRetryable())
	assert.False(t, FailureUnknown.IsRetryable())
}
