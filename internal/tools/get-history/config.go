// internal/tools/get-history/config.go
package gethistory

type Config struct {
	Index        string
	DefaultLimit int
	MaxLimit     int
}

func LoadConfig() *Config {
	return &Config{
		Index:        "ticket-history",
		DefaultLimit: 5,
		MaxLimit:     50,
	}
}
