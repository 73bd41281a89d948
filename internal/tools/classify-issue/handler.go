// internal/tools/classify-issue/handler.go
package classifyissue

import (
	"context"
	"sort"
	"strings"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"
)

const (
	ToolName = "classify_issue"
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
	text := strings.ToLower(input.TicketText)

	type scored struct {
		name    string
		score   float64
		matched []string
	}

	results := make([]scored, 0, len(h.config.Categories))
	for _, cat := range h.config.Categories {
		var matched []string
		for _, kw := range cat.Keywords {
			if strings.Contains(text, kw) {
				matched = append(matched, kw)
			}
		}
		score := 0.0
		if len(cat.Keywords) > 0 {
			score = float64(len(matched)) / float64(len(cat.Keywords))
		}
		results = append(results, scored{name: cat.Name, score: score, matched: matched})
	}

	// Highest coverage wins; on ties the earliest declared category does.
	best := results[0]
	for _, r := range results[1:] {
		if r.score > best.score {
			best = r
		}
	}

	classification := models.IssueClassification{
		PrimaryCategory: best.name,
		Confidence:      min(best.score, 1.0),
		Keywords:        best.matched,
	}

	if best.score == 0 {
		classification.PrimaryCategory = h.config.DefaultCategory
		classification.Confidence = h.config.DefaultConfidence
		classification.Keywords = nil
	}

	// Runner-up categories with any keyword coverage, strongest first.
	secondary := make([]scored, 0, len(results))
	for _, r := range results {
		if r.score > 0 && r.name != classification.PrimaryCategory {
			secondary = append(secondary, r)
		}
	}
	sort.SliceStable(secondary, func(i, j int) bool {
		return secondary[i].score > secondary[j].score
	})
	for i, r := range secondary {
		if i >= h.config.MaxSecondary {
			break
		}
		classification.SecondaryCategories = append(classification.SecondaryCategories, r.name)
	}

	h.logger.Debug("ticket classified", map[string]interface{}{
		"primaryCategory": classification.PrimaryCategory,
		"confidence":      classification.Confidence,
		"matchedKeywords": len(classification.Keywords),
	})

	return &Output{Classification: classification}, nil
}
