// internal/store/file.go
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"ticket-routing/internal/models"
)

// RunResults is the JSON document a routing run writes next to its logs.
type RunResults struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Decisions   []models.FinalDecision `json:"decisions"`
}

// WriteResultsFile writes all decisions of a run to a single JSON file.
func WriteResultsFile(path string, decisions []models.FinalDecision) error {
	doc := RunResults{
		GeneratedAt: time.Now().UTC(),
		Decisions:   decisions,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write results file: %w", err)
	}
	return nil
}
