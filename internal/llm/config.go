// Package llm provides centralized LLM configuration and chat-completion
// client abstractions. This package enables switching providers without
// touching the generation pipeline.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is the Groq OpenAI-compatible provider (default)
	ProviderGroq Provider = "groq"
	// ProviderGemini is the Google Gemini provider
	ProviderGemini Provider = "gemini"
)

// Default sampling parameters for email generation
const (
	// DefaultTemperature favors varied, non-templated phrasing
	DefaultTemperature float32 = 0.8
	// DefaultMaxTokens bounds the completion length
	DefaultMaxTokens = 1500
)

// DefaultGroqModel is the chat model used when no override is configured
const DefaultGroqModel = "llama-3.3-70b-versatile"

// DefaultGeminiModel is the Gemini model used when no override is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	Temperature float32
	MaxTokens   int
}

// DefaultConfig returns the default configuration (currently Groq)
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderGroq,
		Model:       DefaultGroqModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider:    ProviderGemini,
		Model:       DefaultGeminiModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// GetModel returns the configured model name, falling back to the
// provider default when unset.
func (c *Config) GetModel() string {
	if c.Model != "" {
		return c.Model
	}
	switch c.Provider {
	case ProviderGemini:
		return DefaultGeminiModel
	default:
		return DefaultGroqModel
	}
}

// WithModel returns a copy of the Config with a specific model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}
