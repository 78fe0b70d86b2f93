// Package ratelimit provides per-client token bucket rate limiting for the HTTP API.
package ratelimit

import (
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages one token bucket per client, endpoint and method. Buckets live in an
// expiring cache and are dropped after IdleTTL without traffic.
type Limiter struct {
	config  *Config
	buckets *cache.Cache
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = DefaultConfig()
	}
	if config.EndpointConfigs == nil {
		config.EndpointConfigs = DefaultEndpointConfigs()
	}
	if config.IdleTTL <= 0 {
		config.IdleTTL = time.Hour
	}
	cleanup := config.CleanupInterval
	if !config.Enabled || cleanup <= 0 {
		cleanup = -1 // no janitor
	}

	return &Limiter{
		config:  config,
		buckets: cache.New(config.IdleTTL, cleanup),
	}
}

// Allow checks if a request from the given client is allowed for the specified endpoint.
// Returns true if allowed, false if rate limited, along with rate limit information.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || slices.Contains(l.config.Whitelist, clientID) {
		return true, Info{Allowed: true}
	}
	if slices.Contains(l.config.Blacklist, clientID) {
		return false, Info{Allowed: false}
	}

	endpointConfig := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if endpointConfig == nil {
		endpointConfig = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}

	// Unlimited endpoint (e.g., health check)
	if endpointConfig.Limit <= 0 || endpointConfig.Window <= 0 {
		return true, Info{Allowed: true}
	}

	bucket := l.bucket(clientID+":"+endpoint+":"+method, endpointConfig)

	now := time.Now()
	allowed := bucket.AllowN(now, 1)
	tokens := bucket.TokensAt(now)

	info := Info{
		Allowed:   allowed,
		Limit:     endpointConfig.Limit,
		Remaining: max(int(tokens), 0),
		ResetTime: now.Add(secondsFor(float64(bucket.Burst())-tokens, bucket.Limit())),
	}
	if !allowed {
		info.RetryAfter = secondsFor(1-tokens, bucket.Limit())
	}
	return allowed, info
}

// Len returns the number of live buckets.
func (l *Limiter) Len() int {
	return l.buckets.ItemCount()
}

// Stop drops every bucket.
func (l *Limiter) Stop() {
	l.buckets.Flush()
}

// bucket gets or creates the token bucket for key and refreshes its idle expiry.
func (l *Limiter) bucket(key string, cfg *EndpointConfig) *rate.Limiter {
	if v, ok := l.buckets.Get(key); ok {
		bucket := v.(*rate.Limiter)
		l.buckets.SetDefault(key, bucket)
		return bucket
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Limit
	}
	bucket := rate.NewLimiter(rate.Limit(float64(cfg.Limit)/cfg.Window.Seconds()), burst)

	if err := l.buckets.Add(key, bucket, cache.DefaultExpiration); err != nil {
		// Another request created it first.
		if v, ok := l.buckets.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return bucket
}

func secondsFor(tokens float64, r rate.Limit) time.Duration {
	if tokens <= 0 || r <= 0 {
		return 0
	}
	return time.Duration(tokens / float64(r) * float64(time.Second))
}
