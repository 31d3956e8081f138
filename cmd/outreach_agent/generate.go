package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-agent/internal/config"
	"github.com/jonathan/outreach-agent/internal/fetch"
	"github.com/jonathan/outreach-agent/internal/generation"
	"github.com/jonathan/outreach-agent/internal/llm"
	"github.com/jonathan/outreach-agent/internal/observability"
	"github.com/jonathan/outreach-agent/internal/research"
	"github.com/jonathan/outreach-agent/internal/types"
)

var (
	genJobTitle      string
	genCompany       string
	genRecruiter     string
	genJobURL        string
	genEmailType     string
	genTone          string
	genContext       string
	genCandidateName string
	genProfilePath   string
	genConfigPath    string
	genVerbose       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one outreach email from the command line",
	Long: `Generate a single recruiter outreach email without running the server.
The candidate profile can be supplied as a JSON file, and the job
description can be pulled from a posting URL.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genJobTitle, "job-title", "", "Job title being applied to (required)")
	generateCmd.Flags().StringVar(&genCompany, "company", "", "Company name (required)")
	generateCmd.Flags().StringVar(&genRecruiter, "recruiter", "", "Recruiter name (required)")
	generateCmd.Flags().StringVar(&genJobURL, "job-url", "", "Job posting URL to pull the description from")
	generateCmd.Flags().StringVar(&genEmailType, "type", "application", "Email type: application, follow-up, thank-you, inquiry, withdrawal")
	generateCmd.Flags().StringVar(&genTone, "tone", "professional", "Tone: professional, friendly, casual")
	generateCmd.Flags().StringVar(&genContext, "context", "", "Additional context for the email")
	generateCmd.Flags().StringVar(&genCandidateName, "name", "", "Candidate name")
	generateCmd.Flags().StringVar(&genProfilePath, "profile", "", "Path to a candidate profile JSON file")
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to JSON config file")
	generateCmd.Flags().BoolVar(&genVerbose, "verbose", false, "Print research and email summaries")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if genJobTitle == "" || genCompany == "" || genRecruiter == "" {
		return fmt.Errorf("--job-title, --company and --recruiter are required")
	}

	cfg, err := config.Load(genConfigPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	req := &types.GenerateEmailRequest{
		JobTitle:          genJobTitle,
		CompanyName:       genCompany,
		RecruiterName:     genRecruiter,
		CandidateName:     genCandidateName,
		EmailType:         types.EmailType(genEmailType),
		Tone:              types.Tone(genTone),
		AdditionalContext: genContext,
	}

	if genProfilePath != "" {
		profile, err := loadProfile(genProfilePath)
		if err != nil {
			return err
		}
		req.CandidateProfile = profile
	}

	if genJobURL != "" {
		result, err := fetch.JobPosting(ctx, genJobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		req.JobDescription = result.Text
	}

	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	gen, err := buildGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	email, err := gen.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if genVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResearch(email.ResearchData)
		printer.PrintEmail(email)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(email)
}

// buildGenerator wires the LLM client and research provider from config.
func buildGenerator(ctx context.Context, cfg *config.Config) (*generation.Generator, error) {
	var client llm.Client
	if apiKey := cfg.LLMAPIKey(); apiKey != "" {
		llmConfig := llm.DefaultConfig()
		if cfg.Provider == "gemini" {
			llmConfig = llm.DefaultGeminiConfig()
		}
		if cfg.Model != "" {
			llmConfig = llmConfig.WithModel(cfg.Model)
		}
		var err error
		client, err = llm.NewClient(ctx, llmConfig, apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	var searcher research.Searcher
	if cfg.BraveAPIKey != "" {
		brave, err := research.NewBraveClient(cfg.BraveAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create search client: %w", err)
		}
		searcher = brave
	}

	return generation.NewGenerator(client, research.NewService(searcher, 0)), nil
}

// loadProfile reads a candidate profile from a JSON file.
func loadProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	return &profile, nil
}
