// internal/tools/check-service-status/provider.go
package checkservicestatus

import (
	"context"
	"time"

	"ticket-routing/internal/models"
)

// serviceRecord is the per-service view a StatusProvider returns.
type serviceRecord struct {
	Health  models.ServiceHealth `json:"health"`
	Outages []models.Outage      `json:"outages"`
}

// StatusProvider resolves the health of a single service. Unknown services
// report (zero, false, nil); an error means the provider itself failed.
type StatusProvider interface {
	Status(ctx context.Context, serviceID string) (models.ServiceHealth, []models.Outage, bool, error)
}

// StaticStatusProvider is an in-memory StatusProvider seeded at startup.
type StaticStatusProvider struct {
	records map[string]serviceRecord
}

func NewStaticStatusProvider() *StaticStatusProvider {
	now := time.Now().UTC()
	return &StaticStatusProvider{
		records: map[string]serviceRecord{
			"SVC001": {
				Health: models.HealthOutage,
				Outages: []models.Outage{{
					ServiceID:   "SVC001",
					Severity:    "Critical",
					StartedAt:   now.Add(-2 * time.Hour),
					Description: "Network connectivity issues in East region",
				}},
			},
			"SVC002": {Health: models.HealthHealthy},
			"SVC003": {
				Health: models.HealthDegraded,
				Outages: []models.Outage{{
					ServiceID:   "SVC003",
					Severity:    "Medium",
					StartedAt:   now.Add(-30 * time.Minute),
					Description: "Intermittent slowness in billing system",
				}},
			},
			"SVC004": {Health: models.HealthHealthy},
			"SVC005": {
				Health: models.HealthOutage,
				Outages: []models.Outage{{
					ServiceID:   "SVC005",
					Severity:    "Critical",
					StartedAt:   now.Add(-4 * time.Hour),
					Description: "Authentication service down",
				}},
			},
		},
	}
}

func (p *StaticStatusProvider) Status(_ context.Context, serviceID string) (models.ServiceHealth, []models.Outage, bool, error) {
	rec, ok := p.records[serviceID]
	if !ok {
		return "", nil, false, nil
	}
	return rec.Health, rec.Outages, true, nil
}
