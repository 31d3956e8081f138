package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/outreach-agent/internal/prompts"
	"github.com/jonathan/outreach-agent/internal/types"
)

func testRequest() *types.GenerateEmailRequest {
	return &types.GenerateEmailRequest{
		JobTitle:      "Backend Engineer",
		CompanyName:   "Acme",
		RecruiterName: "Jane Lee",
		EmailType:     types.EmailApplication,
		Tone:          types.ToneProfessional,
	}
}

func TestFormatResearch_EmptyListsGetPlaceholders(t *testing.T) {
	research := types.EmptyResearchResult("Acme", "Jane Lee")

	block := FormatResearch(research)

	assert.Contains(t, block, NoCompanyInfoPlaceholder)
	assert.Contains(t, block, NoRecentNewsPlaceholder)
	assert.Contains(t, block, NoDescriptionPlaceholder)
	assert.Contains(t, block, NoRecruiterPlaceholder)
}

func TestFormatResearch_NilResearch(t *testing.T) {
	block := FormatResearch(nil)
	assert.Contains(t, block, NoCompanyInfoPlaceholder)
	assert.Contains(t, block, NoRecentNewsPlaceholder)
}

func TestFormatResearch_RichData(t *testing.T) {
	research := &types.ResearchResult{
		Company: types.CompanyResearch{
			CompanyName: "Acme",
			Description: "Acme builds rockets.",
			Website:     "https://acme.example.com",
			KeyInfo:     []string{"500 employees"},
			RecentNews:  []string{"Acme raises Series C"},
		},
		Recruiter: types.PersonResearch{
			Name:       "Jane Lee",
			Title:      "Senior Technical Recruiter",
			LinkedIn:   "https://linkedin.com/in/janelee",
			Background: []string{"Recruits backend engineers"},
		},
	}

	block := FormatResearch(research)

	assert.Contains(t, block, "Acme builds rockets.")
	assert.Contains(t, block, "https://acme.example.com")
	assert.Contains(t, block, "500 employees")
	assert.Contains(t, block, "Acme raises Series C")
	assert.Contains(t, block, "Senior Technical Recruiter")
	assert.NotContains(t, block, NoCompanyInfoPlaceholder)
	assert.NotContains(t, block, NoRecentNewsPlaceholder)
}

func TestFormatProfile_NilProfileKeepsSectionHeaders(t *testing.T) {
	block := FormatProfile(nil)

	for _, header := range []string{"Identity:", "Experience:", "Education:", "Skills:", "Projects:", "Certifications:"} {
		assert.Contains(t, block, header)
	}
	assert.Contains(t, block, LimitedProfilePlaceholder)
	assert.Contains(t, block, "No experience data provided")
	assert.Contains(t, block, "No project data provided")
}

func TestFormatProfile_PopulatedSections(t *testing.T) {
	profile := &types.CandidateProfile{
		Name:  "Alex Doe",
		Title: "Software Engineer",
		Experiences: []types.Experience{
			{Company: "Initech", Position: "Backend Engineer", StartDate: "2021", Description: "Built billing APIs", Technologies: []string{"Go", "Postgres"}},
		},
		Education: []types.Education{
			{Institution: "State University", Degree: "BSc", FieldOfStudy: "Computer Science", StartDate: "2016", EndDate: "2020"},
		},
		Skills:   []types.Skill{{Name: "Go"}, {Name: "SQL"}},
		Projects: []types.Project{{Name: "ledgerd", Description: "A double-entry ledger"}},
		Certificates: []types.Certificate{
			{Name: "CKA", Issuer: "CNCF"},
		},
	}

	block := FormatProfile(profile)

	assert.Contains(t, block, "Alex Doe")
	assert.Contains(t, block, "Backend Engineer at Initech")
	assert.Contains(t, block, "Built billing APIs")
	assert.Contains(t, block, "[Go, Postgres]")
	assert.Contains(t, block, "BSc in Computer Science, State University")
	assert.Contains(t, block, "Go, SQL")
	assert.Contains(t, block, "ledgerd: A double-entry ledger")
	assert.Contains(t, block, "CKA (CNCF)")
	assert.NotContains(t, block, "No experience data provided")
}

func TestBuildSystemPrompt(t *testing.T) {
	system := BuildSystemPrompt()
	assert.Contains(t, system, "subject")
	assert.Contains(t, system, "suggestedActions")
}

func TestBuildUserPrompt_InterpolatesJobFields(t *testing.T) {
	req := testRequest()
	prompt := BuildUserPrompt(req, types.EmptyResearchResult("Acme", "Jane Lee"))

	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "Acme")
	assert.Contains(t, prompt, "Jane Lee")
	assert.Contains(t, prompt, types.DefaultCandidateName)
	assert.Contains(t, prompt, "Not provided") // empty job description
	assert.NotContains(t, prompt, "{{.")
}

func TestBuildUserPrompt_UnknownToneFallsBackToGeneric(t *testing.T) {
	req := testRequest()
	req.Tone = "sarcastic"

	var prompt string
	require.NotPanics(t, func() {
		prompt = BuildUserPrompt(req, types.EmptyResearchResult("Acme", "Jane Lee"))
	})

	generic := prompts.MustGet("email.json", "tone-default")
	assert.Contains(t, prompt, generic)
	for _, named := range []string{"tone-professional", "tone-friendly", "tone-casual"} {
		assert.NotContains(t, prompt, prompts.MustGet("email.json", named))
	}
}

func TestBuildUserPrompt_UnknownEmailTypeFallsBackToGeneric(t *testing.T) {
	req := testRequest()
	req.EmailType = "rage-quit"

	prompt := BuildUserPrompt(req, types.EmptyResearchResult("Acme", "Jane Lee"))
	assert.Contains(t, prompt, prompts.MustGet("email.json", "type-default"))
}

func TestToneGuidance_TotalFunction(t *testing.T) {
	for _, tone := range []types.Tone{types.ToneProfessional, types.ToneFriendly, types.ToneCasual, "sarcastic", ""} {
		assert.NotEmpty(t, ToneGuidance(tone), "tone %q", tone)
	}
}

func TestTypeInstruction_TotalFunction(t *testing.T) {
	for _, emailType := range []types.EmailType{
		types.EmailApplication, types.EmailFollowUp, types.EmailThankYou,
		types.EmailInquiry, types.EmailWithdrawal, "unknown", "",
	} {
		assert.NotEmpty(t, TypeInstruction(emailType), "type %q", emailType)
	}
}
