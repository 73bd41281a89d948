// internal/tools/check-service-status/handler.go
package checkservicestatus

import (
	"context"
	"encoding/json"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	ToolName = "check_service_status"
)

type Handler struct {
	config   *Config
	provider StatusProvider
	redis    *redis.Client
	logger   logger.Logger
}

// NewHandler builds the service status tool. redis may be nil to disable
// the per-service cache.
func NewHandler(config *Config, provider StatusProvider, rdb *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		provider: provider,
		redis:    rdb,
		logger:   log.WithFields(map[string]interface{}{"tool": ToolName}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	status := models.ServiceStatus{Health: models.HealthHealthy}

	if len(input.ServiceIDs) == 0 {
		return &Output{Status: status}, nil
	}

	for _, svcID := range input.ServiceIDs {
		rec, ok := h.lookup(ctx, svcID)
		if !ok {
			continue
		}
		status.Health = models.WorseHealth(status.Health, rec.Health)
		status.ActiveOutages = append(status.ActiveOutages, rec.Outages...)
	}

	h.logger.Debug("service status aggregated", map[string]interface{}{
		"services":      len(input.ServiceIDs),
		"health":        status.Health,
		"activeOutages": len(status.ActiveOutages),
	})

	return &Output{Status: status}, nil
}

// lookup resolves one service, preferring the cache. Provider failures and
// unknown services are both skipped so partial data still produces a status.
func (h *Handler) lookup(ctx context.Context, svcID string) (serviceRecord, bool) {
	cacheKey := "service:status:" + svcID

	if h.redis != nil {
		if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
			var rec serviceRecord
			if err := json.Unmarshal([]byte(val), &rec); err == nil {
				return rec, true
			}
		}
	}

	health, outages, found, err := h.provider.Status(ctx, svcID)
	if err != nil {
		h.logger.Warn("status provider failed for service, skipping", map[string]interface{}{
			"serviceId": svcID,
			"error":     err,
		})
		return serviceRecord{}, false
	}
	if !found {
		return serviceRecord{}, false
	}

	rec := serviceRecord{Health: health, Outages: outages}
	if h.redis != nil {
		if data, err := json.Marshal(rec); err == nil {
			h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)
		}
	}
	return rec, true
}
