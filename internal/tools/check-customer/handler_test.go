// internal/tools/check-customer/handler_test.go
package checkcustomer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

type countingDirectory struct {
	inner Directory
	calls int
}

func (d *countingDirectory) Lookup(ctx context.Context, customerID string) (models.CustomerProfile, bool, error) {
	d.calls++
	return d.inner.Lookup(ctx, customerID)
}

type failingDirectory struct{}

func (failingDirectory) Lookup(context.Context, string) (models.CustomerProfile, bool, error) {
	return models.CustomerProfile{}, false, errors.New("directory unreachable")
}

func createTestHandler(t *testing.T, dir Directory, rdb *redis.Client) *Handler {
	return NewHandler(LoadConfig(), dir, rdb, logger.NewTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_KnownCustomer(t *testing.T) {
	h := createTestHandler(t, NewStaticDirectory(SeedProfiles()), nil)

	out, err := h.Execute(context.Background(), &Input{CustomerID: "CUST001"})
	require.NoError(t, err)

	assert.True(t, out.Profile.IsVIP)
	assert.Equal(t, models.TierEnterprise, out.Profile.AccountTier)
	assert.Equal(t, 150000.0, out.Profile.LifetimeValue)
}

func TestHandler_Execute_UnknownCustomerGetsDefaultProfile(t *testing.T) {
	h := createTestHandler(t, NewStaticDirectory(SeedProfiles()), nil)

	out, err := h.Execute(context.Background(), &Input{CustomerID: "CUST999"})
	require.NoError(t, err)

	assert.Equal(t, "CUST999", out.Profile.CustomerID)
	assert.False(t, out.Profile.IsVIP)
	assert.Equal(t, models.TierConsumer, out.Profile.AccountTier)
	assert.Equal(t, 0.0, out.Profile.LifetimeValue)
	assert.Equal(t, "Good", out.Profile.AccountStanding)
	assert.Equal(t, "Basic", out.Profile.ServicePlan)
}

func TestHandler_Execute_DirectoryFailureDegradesToDefault(t *testing.T) {
	h := createTestHandler(t, failingDirectory{}, nil)

	out, err := h.Execute(context.Background(), &Input{CustomerID: "CUST001"})
	require.NoError(t, err)

	assert.Equal(t, "CUST001", out.Profile.CustomerID)
	assert.False(t, out.Profile.IsVIP)
	assert.Equal(t, models.TierConsumer, out.Profile.AccountTier)
}

func TestHandler_Execute_CacheHitSkipsDirectory(t *testing.T) {
	cached := models.CustomerProfile{
		CustomerID:      "CUST777",
		IsVIP:           true,
		AccountTier:     models.TierBusiness,
		LifetimeValue:   9000,
		AccountStanding: "Good",
		ServicePlan:     "Business Plus",
	}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	rdb, mock := redismock.NewClientMock()
	mock.ExpectGet("customer:profile:CUST777").SetVal(string(data))

	dir := &countingDirectory{inner: NewStaticDirectory(nil)}
	h := createTestHandler(t, dir, rdb)

	out, err := h.Execute(context.Background(), &Input{CustomerID: "CUST777"})
	require.NoError(t, err)

	assert.Equal(t, cached, out.Profile)
	assert.Equal(t, 0, dir.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_CachePopulatedOnMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	dir := &countingDirectory{inner: NewStaticDirectory(SeedProfiles())}
	h := createTestHandler(t, dir, rdb)

	first, err := h.Execute(context.Background(), &Input{CustomerID: "CUST003"})
	require.NoError(t, err)
	second, err := h.Execute(context.Background(), &Input{CustomerID: "CUST003"})
	require.NoError(t, err)

	assert.Equal(t, first.Profile, second.Profile)
	assert.Equal(t, 1, dir.calls)
	assert.True(t, mr.Exists("customer:profile:CUST003"))
}
