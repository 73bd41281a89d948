// internal/tools/check-service-status/config.go
package checkservicestatus

import "time"

type Config struct {
	CacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		// Health changes fast; keep the cache short.
		CacheTTL: 30 * time.Second,
	}
}
