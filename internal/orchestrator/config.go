// internal/orchestrator/config.go
package orchestrator

import "time"

type Config struct {
	// MaxToolCalls caps tool invocations within one decision cycle.
	MaxToolCalls int

	// DecisionTimeout bounds the wall-clock time of one decision cycle.
	DecisionTimeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		MaxToolCalls:    10,
		DecisionTimeout: 30 * time.Second,
	}
}
