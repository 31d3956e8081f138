// Package generation orchestrates one email-generation request:
// research, prompt composition, the LLM call, output validation, and
// the fallback policy. Generation failures are recovered locally via
// the fallback generator; research failures are absorbed by the
// research provider. The caller cannot tell which path produced the
// email except by content quality.
package generation

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/jonathan/outreach-agent/internal/composer"
	"github.com/jonathan/outreach-agent/internal/fallback"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/research"
	"github.com/jonathan/outreach-agent/internal/schemas"
	"github.com/jonathan/outreach-agent/internal/types"
)

// DefaultGenerationTimeout bounds the LLM call. A timeout is treated
// the same as any other generation failure: the fallback takes over.
const DefaultGenerationTimeout = 45 * time.Second

// Generator sequences the generation pipeline. The LLM client and
// research provider are shared across requests; both are stateless
// from the caller's perspective.
type Generator struct {
	client   llm.Client
	research research.Provider
	timeout  time.Duration
}

// NewGenerator creates a Generator. A nil client means the service is
// unconfigured; Generate reports that before any outbound call.
func NewGenerator(client llm.Client, provider research.Provider) *Generator {
	return &Generator{
		client:   client,
		research: provider,
		timeout:  DefaultGenerationTimeout,
	}
}

// WithTimeout overrides the LLM call timeout.
func (g *Generator) WithTimeout(timeout time.Duration) *Generator {
	g.timeout = timeout
	return g
}

// Configured reports whether an LLM client is available.
func (g *Generator) Configured() bool {
	return g.client != nil
}

// Generate runs the pipeline for one validated request. The returned
// email always carries the research data gathered in this call,
// whether the content came from the LLM or the fallback generator.
func (g *Generator) Generate(ctx context.Context, req *types.GenerateEmailRequest) (*types.GeneratedEmail, error) {
	if !g.Configured() {
		return nil, &NotConfiguredError{}
	}

	researchData := g.safeResearch(ctx, req.CompanyName, req.RecruiterName)

	email := g.generateOrFallback(ctx, req, researchData)
	email.ResearchData = researchData
	email.ResearchData.Normalize()
	return email, nil
}

// safeResearch calls the research provider, which by contract never
// fails. If it panics anyway, the recovery substitutes an empty result:
// research must never block generation.
func (g *Generator) safeResearch(ctx context.Context, companyName, recruiterName string) (result *types.ResearchResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Research provider panicked for %q: %v", companyName, r)
			result = types.EmptyResearchResult(companyName, recruiterName)
		}
	}()

	if g.research == nil {
		return types.EmptyResearchResult(companyName, recruiterName)
	}

	result = g.research.ResearchBoth(ctx, companyName, recruiterName)
	if result == nil {
		result = types.EmptyResearchResult(companyName, recruiterName)
	}
	return result
}

// generateOrFallback attempts the LLM path and falls back on any
// failure: transport error, malformed JSON, or schema violation.
func (g *Generator) generateOrFallback(ctx context.Context, req *types.GenerateEmailRequest, researchData *types.ResearchResult) *types.GeneratedEmail {
	systemPrompt := composer.BuildSystemPrompt()
	userPrompt := composer.BuildUserPrompt(req, researchData)

	genCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.client.ChatJSON(genCtx, systemPrompt, userPrompt)
	if err != nil {
		log.Printf("LLM generation failed, using fallback: %v", err)
		return fallback.Generate(req)
	}

	email, err := parseGeneratedEmail(raw)
	if err != nil {
		log.Printf("LLM output rejected, using fallback: %v", err)
		return fallback.Generate(req)
	}

	return email
}

// llmEmail is the wire shape of the LLM's JSON output. suggestedActions
// is kept raw so a bare string can be coerced to a one-element array.
type llmEmail struct {
	Subject          string          `json:"subject"`
	Body             string          `json:"body"`
	SuggestedActions json.RawMessage `json:"suggestedActions"`
}

// parseGeneratedEmail validates the raw completion against the output
// schema and decodes it.
func parseGeneratedEmail(raw string) (*types.GeneratedEmail, error) {
	if err := schemas.ValidateGeneratedEmail(raw); err != nil {
		return nil, err
	}

	var decoded llmEmail
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, err
	}

	return &types.GeneratedEmail{
		Subject:          decoded.Subject,
		Body:             decoded.Body,
		SuggestedActions: coerceActions(decoded.SuggestedActions),
	}, nil
}

// coerceActions accepts an array of strings or a single string. The
// schema guarantees one of the two shapes.
func coerceActions(raw json.RawMessage) []string {
	var actions []string
	if err := json.Unmarshal(raw, &actions); err == nil {
		return actions
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil && single != "" {
		return []string{single}
	}

	return []string{}
}
