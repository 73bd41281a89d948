// internal/tools/check-customer/handler.go
package checkcustomer

import (
	"context"
	"encoding/json"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	ToolName = "check_vip_status"
)

type Handler struct {
	config    *Config
	directory Directory
	redis     *redis.Client
	logger    logger.Logger
}

// NewHandler builds the customer lookup tool. redis may be nil, in which
// case every lookup goes straight to the directory.
func NewHandler(config *Config, directory Directory, rdb *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		directory: directory,
		redis:     rdb,
		logger:    log.WithFields(map[string]interface{}{"tool": ToolName}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	cacheKey := "customer:profile:" + input.CustomerID

	if h.redis != nil {
		if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
			var profile models.CustomerProfile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				return &Output{Profile: profile}, nil
			}
		}
	}

	profile, found, err := h.directory.Lookup(ctx, input.CustomerID)
	if err != nil {
		// Directory failure degrades to the safe default rather than
		// blocking the decision cycle.
		h.logger.Warn("customer directory lookup failed, using default profile", map[string]interface{}{
			"customerId": input.CustomerID,
			"error":      err,
		})
		return &Output{Profile: models.DefaultCustomerProfile(input.CustomerID)}, nil
	}
	if !found {
		profile = models.DefaultCustomerProfile(input.CustomerID)
	}

	if h.redis != nil {
		if data, err := json.Marshal(profile); err == nil {
			h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)
		}
	}

	h.logger.Debug("customer profile resolved", map[string]interface{}{
		"customerId": input.CustomerID,
		"isVip":      profile.IsVIP,
		"tier":       profile.AccountTier,
		"known":      found,
	})

	return &Output{Profile: profile}, nil
}
