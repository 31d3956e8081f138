package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ExistingKeys(t *testing.T) {
	keys := []string{
		"system", "user",
		"tone-professional", "tone-friendly", "tone-casual", "tone-default",
		"type-application", "type-follow-up", "type-thank-you",
		"type-inquiry", "type-withdrawal", "type-default",
	}
	for _, key := range keys {
		prompt, err := Get("email.json", key)
		require.NoError(t, err, "key %s", key)
		assert.NotEmpty(t, prompt, "key %s", key)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("email.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	require.Error(t, err)
}

func TestGetOrDefault(t *testing.T) {
	// Known key returns its own text
	known := GetOrDefault("email.json", "tone-professional", "tone-default")
	assert.Equal(t, MustGet("email.json", "tone-professional"), known)

	// Unknown key falls back to the default
	unknown := GetOrDefault("email.json", "tone-sarcastic", "tone-default")
	assert.Equal(t, MustGet("email.json", "tone-default"), unknown)
}

func TestFormat(t *testing.T) {
	result := Format("Hello {{.Name}}, welcome to {{.Company}}. Bye {{.Name}}.", map[string]string{
		"Name":    "Jane",
		"Company": "Acme",
	})
	assert.Equal(t, "Hello Jane, welcome to Acme. Bye Jane.", result)
}

func TestFormat_UnknownPlaceholderUntouched(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

func TestList(t *testing.T) {
	keys, err := List("email.json")
	require.NoError(t, err)
	assert.Contains(t, keys, "system")
	assert.Contains(t, keys, "user")
}

func TestUserPromptHasPlaceholders(t *testing.T) {
	user := MustGet("email.json", "user")
	for _, placeholder := range []string{
		"{{.JobTitle}}", "{{.CompanyName}}", "{{.RecruiterName}}",
		"{{.ResearchBlock}}", "{{.ProfileBlock}}", "{{.ToneGuidance}}",
	} {
		assert.True(t, strings.Contains(user, placeholder), "missing %s", placeholder)
	}
}
