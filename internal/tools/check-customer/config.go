// internal/tools/check-customer/config.go
package checkcustomer

import "time"

type Config struct {
	CacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 5 * time.Minute,
	}
}
