// internal/tools/check-customer/directory.go
package checkcustomer

import (
	"context"

	"ticket-routing/internal/models"
)

// Directory resolves customer ids to profiles. Implementations return
// (profile, true, nil) on a hit and (zero, false, nil) when the customer is
// unknown; an error means the backend itself failed.
type Directory interface {
	Lookup(ctx context.Context, customerID string) (models.CustomerProfile, bool, error)
}

// StaticDirectory is an in-memory Directory seeded at startup.
type StaticDirectory struct {
	profiles map[string]models.CustomerProfile
}

func NewStaticDirectory(profiles []models.CustomerProfile) *StaticDirectory {
	m := make(map[string]models.CustomerProfile, len(profiles))
	for _, p := range profiles {
		m[p.CustomerID] = p
	}
	return &StaticDirectory{profiles: m}
}

func (d *StaticDirectory) Lookup(_ context.Context, customerID string) (models.CustomerProfile, bool, error) {
	p, ok := d.profiles[customerID]
	return p, ok, nil
}

// SeedProfiles returns the demo customer base used when no external
// directory is configured.
func SeedProfiles() []models.CustomerProfile {
	return []models.CustomerProfile{
		{CustomerID: "CUST001", IsVIP: true, AccountTier: models.TierEnterprise, LifetimeValue: 150000, AccountStanding: "Excellent", ServicePlan: "Enterprise Premium"},
		{CustomerID: "CUST002", IsVIP: false, AccountTier: models.TierConsumer, LifetimeValue: 500, AccountStanding: "Good", ServicePlan: "Basic"},
		{CustomerID: "CUST003", IsVIP: true, AccountTier: models.TierBusiness, LifetimeValue: 75000, AccountStanding: "Good", ServicePlan: "Business Plus"},
		{CustomerID: "CUST004", IsVIP: false, AccountTier: models.TierConsumer, LifetimeValue: 1200, AccountStanding: "Good", ServicePlan: "Standard"},
		{CustomerID: "CUST005", IsVIP: false, AccountTier: models.TierBusiness, LifetimeValue: 25000, AccountStanding: "Fair", ServicePlan: "Business Basic"},
		{CustomerID: "CUST006", IsVIP: true, AccountTier: models.TierEnterprise, LifetimeValue: 200000, AccountStanding: "Excellent", ServicePlan: "Enterprise Elite"},
		{CustomerID: "CUST007", IsVIP: false, AccountTier: models.TierConsumer, LifetimeValue: 300, AccountStanding: "Good", ServicePlan: "Basic"},
		{CustomerID: "CUST008", IsVIP: false, AccountTier: models.TierConsumer, LifetimeValue: 800, AccountStanding: "Good", ServicePlan: "Standard"},
	}
}
