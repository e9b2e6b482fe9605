package countries

import "time"

// Config holds configuration for building the country table.
type Config struct {
	// CorrectionsFile is an optional YAML file extending the built-in corrections.
	CorrectionsFile string `mapstructure:"corrections_file" default:""`
	// CacheTTLSeconds is how long the HTTP API reuses a build. Zero rebuilds on every request.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
}

// CacheTTL returns the cache lifetime as a duration.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
