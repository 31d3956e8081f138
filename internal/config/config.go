// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values are filled from the
// environment or defaults.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Credentials
	GroqAPIKey   string `json:"groq_api_key,omitempty"`   // Groq API key (GROQ_API_KEY)
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key (GEMINI_API_KEY)
	BraveAPIKey  string `json:"brave_api_key,omitempty"`  // Brave Search API key (BRAVE_API_KEY)

	// Models
	Provider string `json:"provider,omitempty"` // groq (default) or gemini
	Model    string `json:"model,omitempty"`    // model override for the provider

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty disables history
}

// DefaultPort is used when neither the config file nor environment set one.
const DefaultPort = 8080

// Load loads configuration from an optional JSON file, then fills empty
// fields from the environment. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		loaded, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.applyEnv()
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile reads and parses a JSON config file.
func loadFile(path string) (*Config, error) {
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// applyEnv fills empty fields from environment variables.
func (c *Config) applyEnv() {
	if c.GroqAPIKey == "" {
		c.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.BraveAPIKey == "" {
		c.BraveAPIKey = os.Getenv("BRAVE_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Provider == "" {
		c.Provider = os.Getenv("LLM_PROVIDER")
	}
	if c.Model == "" {
		c.Model = os.Getenv("LLM_MODEL")
	}
	if c.Port == 0 {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = port
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.Provider != "" && c.Provider != "groq" && c.Provider != "gemini" {
		return fmt.Errorf("config error: 'provider' must be \"groq\" or \"gemini\"")
	}
	return nil
}

// LLMAPIKey returns the credential for the configured provider.
func (c *Config) LLMAPIKey() string {
	if c.Provider == "gemini" {
		return c.GeminiAPIKey
	}
	return c.GroqAPIKey
}
