package ratelimit

import (
	"net/http"
	"time"
)

// Config holds rate limiting configuration. It is filled by the service configuration loader,
// so the RATE_LIMIT_* variables override file values.
type Config struct {
	Enabled         bool             `json:"enabled" yaml:"enabled" env:"RATE_LIMIT_ENABLED" env-default:"true"`
	DefaultLimit    int              `json:"default_limit" yaml:"default_limit" env:"RATE_LIMIT_DEFAULT_LIMIT" env-default:"1000"`
	DefaultWindow   time.Duration    `json:"default_window" yaml:"default_window" env:"RATE_LIMIT_DEFAULT_WINDOW" env-default:"1m"`
	CleanupInterval time.Duration    `json:"cleanup_interval" yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
	IdleTTL         time.Duration    `json:"idle_ttl" yaml:"idle_ttl" env:"RATE_LIMIT_IDLE_TTL" env-default:"1h"`
	Whitelist       []string         `json:"whitelist" yaml:"whitelist" env:"RATE_LIMIT_WHITELIST" env-separator:","`
	Blacklist       []string         `json:"blacklist" yaml:"blacklist" env:"RATE_LIMIT_BLACKLIST" env-separator:","`
	EndpointConfigs []EndpointConfig `json:"endpoints" yaml:"endpoints"`
}

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string        `json:"path" yaml:"path"`     // exact path, or a prefix when it ends with "/"
	Method string        `json:"method" yaml:"method"` // HTTP method
	Limit  int           `json:"limit" yaml:"limit"`   // requests per window; <= 0 means unlimited
	Window time.Duration `json:"window" yaml:"window"`
	Burst  int           `json:"burst" yaml:"burst"` // defaults to Limit if 0
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		IdleTTL:         time.Hour,
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Each analysis makes two paid model calls.
		{Path: "/posesug", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/frame/analyze", Method: http.MethodPost, Limit: 30, Window: time.Minute, Burst: 5},

		{Path: "/metrics", Method: http.MethodGet, Limit: 0},
	}
}
