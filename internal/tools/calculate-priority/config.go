// internal/tools/calculate-priority/config.go
package calculatepriority

// Config holds the weighted-scoring tables. The four factor groups cap at
// 30 + 40 + 20 + 10 = 100.
type Config struct {
	VIPBonus        float64
	EnterpriseBonus float64
	BusinessBonus   float64

	SeverityByCategory map[string]float64
	UnknownSeverity    float64

	StaleAgeHours float64
	StaleAgeScore float64
	AgingAgeHours float64
	AgingAgeScore float64

	OutageImpact   float64
	DegradedImpact float64

	P0Threshold float64
	P1Threshold float64
	P2Threshold float64
}

func LoadConfig() *Config {
	return &Config{
		VIPBonus:        30,
		EnterpriseBonus: 20,
		BusinessBonus:   10,
		SeverityByCategory: map[string]float64{
			"Network Outage":    40,
			"Account Access":    30,
			"Technical Problem": 20,
			"Billing Dispute":   10,
		},
		UnknownSeverity: 20,
		StaleAgeHours:   48,
		StaleAgeScore:   20,
		AgingAgeHours:   24,
		AgingAgeScore:   10,
		OutageImpact:    10,
		DegradedImpact:  5,
		P0Threshold:     80,
		P1Threshold:     60,
		P2Threshold:     40,
	}
}
