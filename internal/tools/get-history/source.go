// internal/tools/get-history/source.go
package gethistory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	commonerrors "ticket-routing/internal/common/errors"
	"ticket-routing/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
)

// HistorySource fetches a customer's resolved tickets, most recent first.
type HistorySource interface {
	Fetch(ctx context.Context, customerID string, limit int) ([]models.HistoricalTicket, error)
}

// ESHistorySource reads the ticket history index.
type ESHistorySource struct {
	es    *elasticsearch.Client
	index string
}

func NewESHistorySource(es *elasticsearch.Client, index string) *ESHistorySource {
	return &ESHistorySource{es: es, index: index}
}

func (s *ESHistorySource) Fetch(ctx context.Context, customerID string, limit int) ([]models.HistoricalTicket, error) {
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"term": map[string]interface{}{
				"customer_id": customerID,
			},
		},
		"sort": []map[string]interface{}{
			{"resolved_at": map[string]interface{}{"order": "desc"}},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("encode history query: %w", err)
	}

	res, err := s.es.Search(
		s.es.Search.WithContext(ctx),
		s.es.Search.WithIndex(s.index),
		s.es.Search.WithBody(&buf),
		s.es.Search.WithSize(limit),
	)
	if err != nil {
		return nil, commonerrors.NewSearchQueryFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, commonerrors.NewSearchQueryFailedError(fmt.Errorf("search returned %s", res.Status()))
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source models.HistoricalTicket `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode history response: %w", err)
	}

	tickets := make([]models.HistoricalTicket, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		tickets = append(tickets, hit.Source)
	}
	return tickets, nil
}

// StaticHistorySource is the in-memory fallback used when Elasticsearch is
// not configured.
type StaticHistorySource struct {
	history map[string][]models.HistoricalTicket
}

func NewStaticHistorySource() *StaticHistorySource {
	now := time.Now().UTC()
	day := 24 * time.Hour
	return &StaticHistorySource{
		history: map[string][]models.HistoricalTicket{
			"CUST001": {
				{TicketID: "TKT-HIST-001", IssueType: "Network Outage", ResolutionTimeHours: 2.5, Escalated: true, ResolvedAt: now.Add(-30 * day)},
				{TicketID: "TKT-HIST-002", IssueType: "Technical Problem", ResolutionTimeHours: 1.0, Escalated: false, ResolvedAt: now.Add(-15 * day)},
			},
			"CUST002": {
				{TicketID: "TKT-HIST-003", IssueType: "Billing Dispute", ResolutionTimeHours: 24.0, Escalated: false, ResolvedAt: now.Add(-60 * day)},
			},
			"CUST003": {
				{TicketID: "TKT-HIST-004", IssueType: "Account Access", ResolutionTimeHours: 0.5, Escalated: false, ResolvedAt: now.Add(-10 * day)},
				{TicketID: "TKT-HIST-005", IssueType: "Technical Problem", ResolutionTimeHours: 3.0, Escalated: true, ResolvedAt: now.Add(-5 * day)},
				{TicketID: "TKT-HIST-006", IssueType: "Network Outage", ResolutionTimeHours: 4.0, Escalated: true, ResolvedAt: now.Add(-2 * day)},
			},
			"CUST005": {
				{TicketID: "TKT-HIST-007", IssueType: "Billing Dispute", ResolutionTimeHours: 48.0, Escalated: true, ResolvedAt: now.Add(-90 * day)},
			},
		},
	}
}

func (s *StaticHistorySource) Fetch(_ context.Context, customerID string, limit int) ([]models.HistoricalTicket, error) {
	tickets := s.history[customerID]
	if len(tickets) > limit {
		tickets = tickets[:limit]
	}
	return tickets, nil
}
