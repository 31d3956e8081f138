package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  300,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	}
}

func TestAllow_BurstThenDenied(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	// Generation rule allows a burst of 5.
	for i := 0; i < 5; i++ {
		allowed, _ := limiter.Allow("client-1", "/api/ai-email", "POST")
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, info := limiter.Allow("client-1", "/api/ai-email", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 30, info.Limit)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 5; i++ {
		limiter.Allow("client-1", "/api/ai-email", "POST")
	}
	allowed, _ := limiter.Allow("client-1", "/api/ai-email", "POST")
	require.False(t, allowed)

	allowed, _ = limiter.Allow("client-2", "/api/ai-email", "POST")
	assert.True(t, allowed)
}

func TestAllow_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		allowed, info := limiter.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestAllow_DisabledConfigAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-1", "/api/ai-email", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_UnmatchedPathUsesDefaults(t *testing.T) {
	config := testConfig()
	config.DefaultLimit = 2
	limiter := NewLimiter(config)
	defer limiter.Stop()

	allowed, info := limiter.Allow("client-1", "/api/something-else", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	limiter.Allow("client-1", "/api/something-else", "GET")
	allowed, _ = limiter.Allow("client-1", "/api/something-else", "GET")
	assert.False(t, allowed)
}

func TestMatchRule(t *testing.T) {
	rules := []Rule{
		{Path: "/api/ai-email", Method: "POST", Limit: 30},
		{Path: "/api/", Method: "GET", Limit: 100},
	}

	exact := matchRule("/api/ai-email", "POST", rules)
	require.NotNil(t, exact)
	assert.Equal(t, 30, exact.Limit)

	prefix := matchRule("/api/ai-email/history", "GET", rules)
	require.NotNil(t, prefix)
	assert.Equal(t, 100, prefix.Limit)

	assert.Nil(t, matchRule("/health", "GET", rules))
	assert.Nil(t, matchRule("/api/ai-email", "DELETE", rules))
}

func TestTokenBucket_Refill(t *testing.T) {
	// 100 tokens per second so the refill is observable without sleeping long.
	bucket := newTokenBucket(1, 100)

	require.True(t, bucket.allow())
	require.False(t, bucket.allow())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	config := LoadConfig()
	assert.False(t, config.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")

	config := LoadConfig()
	assert.True(t, config.Enabled)
	assert.Equal(t, 42, config.DefaultLimit)
	assert.Equal(t, 30*time.Second, config.DefaultWindow)
}
