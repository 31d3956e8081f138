package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// groqBaseURL is the OpenAI-compatible endpoint exposed by Groq
const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient implements Client for Groq's OpenAI-compatible chat API
type GroqClient struct {
	client *openai.Client
	config *Config
}

// NewGroqClient creates a new Groq client
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultConfig()
	}

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = groqBaseURL

	return &GroqClient{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// ChatJSON sends a system+user message pair and returns the completion
// text, requesting a JSON object response format.
func (c *GroqClient) ChatJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	temperature := c.config.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	maxTokens := c.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.config.GetModel(),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in response")
	}

	// Groq honors response_format, but models still wrap JSON in
	// markdown fences often enough that stripping stays worthwhile.
	return CleanJSONBlock(content), nil
}

// Model returns the configured model name
func (c *GroqClient) Model() string {
	return c.config.GetModel()
}

// Close releases resources held by the client. The underlying HTTP
// client holds none, so this is a no-op.
func (c *GroqClient) Close() error {
	return nil
}
