package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over LLM chat-completion providers
type Client interface {
	// ChatJSON sends a system+user message pair and returns the raw
	// completion text, constrained to a JSON object where the provider
	// supports a response format.
	ChatJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// Model returns the underlying provider model name
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderGroq:
		return NewGroqClient(config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", config.Provider)
	}
}
