package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, ProviderGroq, config.Provider)
	assert.Equal(t, DefaultGroqModel, config.GetModel())
	assert.Equal(t, DefaultTemperature, config.Temperature)
}

func TestConfig_GetModel_ProviderDefaults(t *testing.T) {
	groq := &Config{Provider: ProviderGroq}
	assert.Equal(t, DefaultGroqModel, groq.GetModel())

	gemini := &Config{Provider: ProviderGemini}
	assert.Equal(t, DefaultGeminiModel, gemini.GetModel())
}

func TestConfig_WithModel(t *testing.T) {
	config := DefaultConfig()
	custom := config.WithModel("llama-3.1-8b-instant")

	assert.Equal(t, "llama-3.1-8b-instant", custom.GetModel())
	// Original is unchanged
	assert.Equal(t, DefaultGroqModel, config.GetModel())
}

func TestNewGroqClient_RequiresAPIKey(t *testing.T) {
	_, err := NewGroqClient(DefaultConfig(), "")
	require.Error(t, err)
}

func TestNewGroqClient(t *testing.T) {
	client, err := NewGroqClient(nil, "test-key")
	require.NoError(t, err)
	assert.Equal(t, DefaultGroqModel, client.Model())
	assert.NoError(t, client.Close())
}
