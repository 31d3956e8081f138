package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule represents rate limiting configuration for a specific endpoint.
type Rule struct {
	Path   string        // Endpoint path pattern (supports prefix matching for paths ending in "/")
	Method string        // HTTP method
	Limit  int           // Maximum requests per window; <= 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Rules           []Rule
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Rules:           DefaultRules(),
	}
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Rules:           DefaultRules(),
	}
}

// DefaultRules returns the per-endpoint rules. Email generation hits
// two paid upstream APIs per request, so its limit is the strictest.
func DefaultRules() []Rule {
	return []Rule{
		{Path: "/api/ai-email", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/api/ai-email/history", Method: "GET", Limit: 120, Window: time.Minute},
		{Path: "/health", Method: "GET", Limit: 0},
	}
}

// matchRule matches a request path and method to a rule. Exact matches
// win over prefix matches; prefix matching applies to rule paths that
// end with "/".
func matchRule(path, method string, rules []Rule) *Rule {
	for i := range rules {
		rule := &rules[i]
		if rule.Path == path && rule.Method == method {
			return rule
		}
	}
	for i := range rules {
		rule := &rules[i]
		if rule.Method == method && strings.HasSuffix(rule.Path, "/") && strings.HasPrefix(path, rule.Path) {
			return rule
		}
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
