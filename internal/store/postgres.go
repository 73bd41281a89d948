// internal/store/postgres.go

// Package store persists finished routing decisions: a Postgres table for
// querying and a JSON results file for the CLI run summary.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ticket-routing/internal/common/logger"
	"ticket-routing/internal/models"

	commonerrors "ticket-routing/internal/common/errors"
)

// DecisionStore saves finished decisions. The router treats persistence as
// optional, a nil store simply skips it.
type DecisionStore interface {
	Save(ctx context.Context, decision *models.FinalDecision) error
}

type PostgresStore struct {
	db     *sql.DB
	logger logger.Logger
}

func NewPostgresStore(db *sql.DB, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:     db,
		logger: log.WithFields(map[string]interface{}{"component": "decision-store"}),
	}
}

// EnsureSchema creates the decisions table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS routing_decisions (
			decision_id            TEXT PRIMARY KEY,
			ticket_id              TEXT NOT NULL,
			customer_id            TEXT NOT NULL,
			assigned_team          TEXT NOT NULL,
			priority_level         TEXT NOT NULL,
			confidence_score       DOUBLE PRECISION NOT NULL,
			reasoning              TEXT NOT NULL,
			processing_time_ms     DOUBLE PRECISION NOT NULL,
			requires_manual_review BOOLEAN NOT NULL,
			created_at             TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Save inserts one flat row per decision, enums stored as their string
// values so downstream reporting needs no lookup tables.
func (s *PostgresStore) Save(ctx context.Context, decision *models.FinalDecision) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO routing_decisions (
			decision_id, ticket_id, customer_id, assigned_team,
			priority_level, confidence_score, reasoning,
			processing_time_ms, requires_manual_review, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		decision.DecisionID,
		decision.TicketID,
		decision.CustomerID,
		string(decision.AssignedTeam),
		string(decision.PriorityLevel),
		decision.ConfidenceScore,
		decision.Reasoning,
		decision.ProcessingTimeMs,
		decision.RequiresManualReview,
		decision.Timestamp.UTC().Format(time.RFC3339),
	)
	if err != nil {
		s.logger.WithError(err).Error("decision insert failed", map[string]interface{}{
			"decisionId": decision.DecisionID,
			"ticketId":   decision.TicketID,
		})
		return commonerrors.NewDecisionInsertFailedError(err)
	}

	s.logger.Debug("decision saved", map[string]interface{}{
		"decisionId": decision.DecisionID,
		"ticketId":   decision.TicketID,
	})
	return nil
}
