// internal/tools/check-service-status/handler_test.go
package checkservicestatus

import (
	"context"
	"errors"
	"testing"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type flakyProvider struct {
	inner   StatusProvider
	failFor map[string]bool
	calls   int
}

func (p *flakyProvider) Status(ctx context.Context, serviceID string) (models.ServiceHealth, []models.Outage, bool, error) {
	p.calls++
	if p.failFor[serviceID] {
		return "", nil, false, errors.New("status API unreachable")
	}
	return p.inner.Status(ctx, serviceID)
}

func createTestHandler(t *testing.T, provider StatusProvider, rdb *redis.Client) *Handler {
	return NewHandler(LoadConfig(), provider, rdb, logger.NewTestLogger(t))
}

func check(t *testing.T, h *Handler, ids []string) *Output {
	out, err := h.Execute(context.Background(), &Input{ServiceIDs: ids})
	require.NoError(t, err)
	return out
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_NoServicesReportsHealthy(t *testing.T) {
	h := createTestHandler(t, NewStaticStatusProvider(), nil)

	out := check(t, h, nil)

	assert.Equal(t, models.HealthHealthy, out.Status.Health)
	assert.Empty(t, out.Status.ActiveOutages)
}

func TestHandler_Execute_WorstHealthWins(t *testing.T) {
	tests := []struct {
		name            string
		serviceIDs      []string
		expectedHealth  models.ServiceHealth
		expectedOutages int
	}{
		{
			name:            "all healthy",
			serviceIDs:      []string{"SVC002", "SVC004"},
			expectedHealth:  models.HealthHealthy,
			expectedOutages: 0,
		},
		{
			name:            "degraded beats healthy",
			serviceIDs:      []string{"SVC002", "SVC003"},
			expectedHealth:  models.HealthDegraded,
			expectedOutages: 1,
		},
		{
			name:            "outage beats degraded",
			serviceIDs:      []string{"SVC003", "SVC001"},
			expectedHealth:  models.HealthOutage,
			expectedOutages: 2,
		},
		{
			name:            "multiple outages aggregate",
			serviceIDs:      []string{"SVC001", "SVC005"},
			expectedHealth:  models.HealthOutage,
			expectedOutages: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := createTestHandler(t, NewStaticStatusProvider(), nil)
			out := check(t, h, tt.serviceIDs)

			assert.Equal(t, tt.expectedHealth, out.Status.Health)
			assert.Len(t, out.Status.ActiveOutages, tt.expectedOutages)
		})
	}
}

func TestHandler_Execute_UnknownServicesSkipped(t *testing.T) {
	h := createTestHandler(t, NewStaticStatusProvider(), nil)

	out := check(t, h, []string{"SVC999", "SVC001"})

	assert.Equal(t, models.HealthOutage, out.Status.Health)
	assert.Len(t, out.Status.ActiveOutages, 1)
}

func TestHandler_Execute_ProviderFailureSkipsOnlyThatService(t *testing.T) {
	provider := &flakyProvider{
		inner:   NewStaticStatusProvider(),
		failFor: map[string]bool{"SVC001": true},
	}
	h := createTestHandler(t, provider, nil)

	out := check(t, h, []string{"SVC001", "SVC003"})

	// SVC001 failed so only the degraded SVC003 contributes.
	assert.Equal(t, models.HealthDegraded, out.Status.Health)
	assert.Len(t, out.Status.ActiveOutages, 1)
}

func TestHandler_Execute_CacheAvoidsRepeatProviderCalls(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	provider := &flakyProvider{inner: NewStaticStatusProvider()}
	h := createTestHandler(t, provider, rdb)

	check(t, h, []string{"SVC001"})
	check(t, h, []string{"SVC001"})

	assert.Equal(t, 1, provider.calls)
	assert.True(t, mr.Exists("service:status:SVC001"))
}
