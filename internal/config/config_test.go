package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/civicdesk/complaint-portal/internal/config"
)

// TestLoadCacheConfigDefaults verifies the defaults when nothing is set.
func TestLoadCacheConfigDefaults(t *testing.T) {
	cfg := config.LoadCacheConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true}, cfg.Methods)
	assert.Equal(t, 30*time.Second, cfg.TTL)
	assert.Equal(t, "route_query", cfg.KeyStrategy)
	assert.Equal(t, "cache", cfg.Prefix)
	assert.Equal(t, 1048576, cfg.MaxBodyBytes)
}

// TestLoadCacheConfigFromEnv verifies env overrides and method parsing.
func TestLoadCacheConfigFromEnv(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CACHE_METHODS", "get, head")
	t.Setenv("CACHE_TTL", "2m")

	cfg := config.LoadCacheConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, map[string]bool{"GET": true, "HEAD": true}, cfg.Methods)
	assert.Equal(t, 2*time.Minute, cfg.TTL)
}

// TestLoadRateLimitConfigClamping verifies nonsense values are clamped
// back into a usable range.
func TestLoadRateLimitConfigClamping(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := config.LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Minute, cfg.RefillInterval)
	// TTL must cover several refill intervals so buckets do not vanish
	// between refills.
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

// TestLoadRateLimitConfigDefaults verifies the default limiter shape.
func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := config.LoadRateLimitConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Second, cfg.RefillInterval)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
	assert.Equal(t, "rl", cfg.Prefix)
}
