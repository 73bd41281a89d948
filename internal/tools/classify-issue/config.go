// internal/tools/classify-issue/config.go
package classifyissue

// CategoryKeywords binds one issue category to its keyword list.
type CategoryKeywords struct {
	Name     string
	Keywords []string
}

type Config struct {
	// Categories is scanned in order; on tied scores the first declared
	// category wins.
	Categories []CategoryKeywords

	// MaxSecondary caps how many runner-up categories are reported.
	MaxSecondary int

	// Defaults used when no keyword matches at all.
	DefaultCategory   string
	DefaultConfidence float64
}

func LoadConfig() *Config {
	return &Config{
		Categories: []CategoryKeywords{
			{
				Name:     "Network Outage",
				Keywords: []string{"outage", "down", "offline", "connection", "connectivity", "network", "internet"},
			},
			{
				Name:     "Billing Dispute",
				Keywords: []string{"bill", "charge", "invoice", "payment", "refund", "overcharged", "dispute", "cost"},
			},
			{
				Name:     "Technical Problem",
				Keywords: []string{"error", "not working", "broken", "slow", "issue", "problem", "technical", "router"},
			},
			{
				Name:     "Account Access",
				Keywords: []string{"password", "login", "access", "account", "locked", "authentication", "reset", "credentials"},
			},
		},
		MaxSecondary:      2,
		DefaultCategory:   "Technical Problem",
		DefaultConfidence: 0.5,
	}
}
