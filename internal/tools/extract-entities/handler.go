// internal/tools/extract-entities/handler.go
package extractentities

import (
	"context"
	"strconv"
	"strings"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"
)

const (
	ToolName = "extract_entities"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"tool": ToolName}),
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	text := input.TicketText

	entities := models.ExtractedEntities{
		AccountNumbers: h.config.AccountPattern.FindAllString(text, -1),
		ServiceIDs:     h.config.ServicePattern.FindAllString(text, -1),
		ErrorCodes:     h.config.ErrorPattern.FindAllString(text, -1),
		PhoneNumbers:   h.config.PhonePattern.FindAllString(text, -1),
	}

	// Monetary amounts keep only the captured number; thousands separators
	// are stripped and unparsable captures dropped silently.
	for _, m := range h.config.MonetaryPattern.FindAllStringSubmatch(text, -1) {
		raw := strings.ReplaceAll(m[1], ",", "")
		if amount, err := strconv.ParseFloat(raw, 64); err == nil {
			entities.MonetaryAmounts = append(entities.MonetaryAmounts, amount)
		}
	}

	h.logger.Debug("entities extracted", map[string]interface{}{
		"accounts": len(entities.AccountNumbers),
		"services": len(entities.ServiceIDs),
		"errors":   len(entities.ErrorCodes),
		"phones":   len(entities.PhoneNumbers),
		"amounts":  len(entities.MonetaryAmounts),
	})

	return &Output{Entities: entities}, nil
}
