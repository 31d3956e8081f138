package generation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/types"
)

// mockClient scripts one LLM response per call.
type mockClient struct {
	response string
	err      error
	calls    int
}

func (m *mockClient) ChatJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockClient) Model() string { return "mock-model" }
func (m *mockClient) Close() error  { return nil }

// stubProvider returns a fixed research result and counts calls.
type stubProvider struct {
	result *types.ResearchResult
	calls  int
}

func (s *stubProvider) ResearchBoth(ctx context.Context, companyName, recruiterName string) *types.ResearchResult {
	s.calls++
	return s.result
}

// panicProvider always panics.
type panicProvider struct{}

func (panicProvider) ResearchBoth(ctx context.Context, companyName, recruiterName string) *types.ResearchResult {
	panic("search backend exploded")
}

func validRequest() *types.GenerateEmailRequest {
	return &types.GenerateEmailRequest{
		JobTitle:      "Backend Engineer",
		CompanyName:   "Acme",
		RecruiterName: "Jane Lee",
		EmailType:     types.EmailApplication,
	}
}

func goodCompletion() string {
	return `{"subject":"Excited about the Backend Engineer role","body":"Dear Jane,\n\nI would love to talk.","suggestedActions":["Follow up next week"]}`
}

func TestGenerate_NotConfigured(t *testing.T) {
	gen := NewGenerator(nil, &stubProvider{})

	email, err := gen.Generate(context.Background(), validRequest())

	require.Nil(t, email)
	var notConfigured *NotConfiguredError
	require.ErrorAs(t, err, &notConfigured)
	assert.Equal(t, "Groq API key not configured", err.Error())
}

func TestGenerate_LLMPath(t *testing.T) {
	client := &mockClient{response: goodCompletion()}
	provider := &stubProvider{result: types.EmptyResearchResult("Acme", "Jane Lee")}
	gen := NewGenerator(client, provider)

	email, err := gen.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Excited about the Backend Engineer role", email.Subject)
	assert.Equal(t, []string{"Follow up next week"}, email.SuggestedActions)
	assert.False(t, email.Fallback)
	assert.Equal(t, 1, client.calls)
	assert.Equal(t, 1, provider.calls)
	require.NotNil(t, email.ResearchData)
	assert.Equal(t, "Acme", email.ResearchData.Company.CompanyName)
}

func TestGenerate_FallbackOnLLMError(t *testing.T) {
	client := &mockClient{err: errors.New("upstream 500")}
	gen := NewGenerator(client, &stubProvider{result: types.EmptyResearchResult("Acme", "Jane Lee")})

	email, err := gen.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, email.Fallback)
	assert.NotEmpty(t, email.Subject)
	assert.NotEmpty(t, email.Body)
	assert.Len(t, email.SuggestedActions, 3)
}

func TestGenerate_ResearchPreservedOnLLMFailure(t *testing.T) {
	researchResult := types.EmptyResearchResult("Acme", "Jane Lee")
	researchResult.Company.Description = "Acme builds rockets."
	client := &mockClient{err: errors.New("timeout")}
	gen := NewGenerator(client, &stubProvider{result: researchResult})

	email, err := gen.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, email.Fallback)
	require.NotNil(t, email.ResearchData)
	assert.Equal(t, "Acme builds rockets.", email.ResearchData.Company.Description)
}

func TestGenerate_FallbackOnMalformedJSON(t *testing.T) {
	client := &mockClient{response: "I'm sorry, as a language model I cannot"}
	gen := NewGenerator(client, &stubProvider{})

	email, err := gen.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, email.Fallback)
}

func TestGenerate_FallbackOnSchemaViolation(t *testing.T) {
	// Valid JSON, empty subject.
	client := &mockClient{response: `{"subject":"","body":"hello","suggestedActions":[]}`}
	gen := NewGenerator(client, &stubProvider{})

	email, err := gen.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, email.Fallback)
}

func TestGenerate_NilProviderYieldsEmptyResearch(t *testing.T) {
	client := &mockClient{response: goodCompletion()}
	gen := NewGenerator(client, nil)

	email, err := gen.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, email.ResearchData)
	assert.Equal(t, "Acme", email.ResearchData.Company.CompanyName)
	assert.Equal(t, "Jane Lee", email.ResearchData.Recruiter.Name)
}

func TestGenerate_ResearchPanicDoesNotBlockGeneration(t *testing.T) {
	client := &mockClient{response: goodCompletion()}
	gen := NewGenerator(client, panicProvider{})

	email, err := gen.Generate(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Excited about the Backend Engineer role", email.Subject)
	require.NotNil(t, email.ResearchData)
	assert.Equal(t, "Acme", email.ResearchData.Company.CompanyName)
}

func TestGenerate_ResearchDataNeverNullInJSON(t *testing.T) {
	client := &mockClient{response: goodCompletion()}
	gen := NewGenerator(client, nil)

	email, err := gen.Generate(context.Background(), validRequest())
	require.NoError(t, err)

	encoded, err := json.Marshal(email)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "null")
}

func TestParseGeneratedEmail_SingleStringAction(t *testing.T) {
	email, err := parseGeneratedEmail(`{"subject":"s","body":"b","suggestedActions":"Follow up"}`)

	require.NoError(t, err)
	assert.Equal(t, []string{"Follow up"}, email.SuggestedActions)
}

func TestCoerceActions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"array", `["a","b"]`, []string{"a", "b"}},
		{"single string", `"a"`, []string{"a"}},
		{"empty string", `""`, []string{}},
		{"empty array", `[]`, []string{}},
		{"garbage", `42`, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coerceActions(json.RawMessage(tt.raw)))
		})
	}
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewGenerator(nil, nil).Configured())
	assert.True(t, NewGenerator(&mockClient{}, nil).Configured())
}
