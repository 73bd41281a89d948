// internal/tools/extract-entities/config.go
package extractentities

import "regexp"

// Config holds the compiled extraction patterns. Patterns are fixed at
// startup; extraction itself never fails.
type Config struct {
	AccountPattern  *regexp.Regexp
	ServicePattern  *regexp.Regexp
	ErrorPattern    *regexp.Regexp
	PhonePattern    *regexp.Regexp
	MonetaryPattern *regexp.Regexp
}

func LoadConfig() *Config {
	return &Config{
		AccountPattern:  regexp.MustCompile(`(?i)ACC-\d+`),
		ServicePattern:  regexp.MustCompile(`(?i)SVC\d+`),
		ErrorPattern:    regexp.MustCompile(`[A-Z]+-\d+`),
		PhonePattern:    regexp.MustCompile(`\d{3}-\d{3}-\d{4}`),
		MonetaryPattern: regexp.MustCompile(`\$(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`),
	}
}
