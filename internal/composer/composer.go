// Package composer builds the system and user prompts sent to the LLM.
// Everything here is pure string construction: no I/O, no failure modes.
// Empty or missing inputs render as literal placeholder text so the
// prompts are always well-formed.
package composer

import (
	"fmt"
	"strings"

	"github.com/jonathan/outreach-agent/internal/prompts"
	"github.com/jonathan/outreach-agent/internal/types"
)

// promptFile is the embedded template file for email generation.
const promptFile = "email.json"

// Placeholder literals substituted for absent research data.
const (
	NoCompanyInfoPlaceholder  = "No additional company information found"
	NoRecentNewsPlaceholder   = "No recent news found"
	NoDescriptionPlaceholder  = "No company description found"
	NoRecruiterPlaceholder    = "No additional recruiter information found"
	LimitedProfilePlaceholder = "Limited profile information available"
)

// BuildSystemPrompt returns the static system instruction establishing
// the writing role, tone philosophy, and JSON output contract.
func BuildSystemPrompt() string {
	return prompts.MustGet(promptFile, "system")
}

// BuildUserPrompt interpolates the job context, formatted research and
// profile blocks, and per-tone/per-type guidance into the user prompt.
// Tone and email-type lookups are total: unrecognized values resolve to
// generic guidance rather than an error.
func BuildUserPrompt(req *types.GenerateEmailRequest, research *types.ResearchResult) string {
	template := prompts.MustGet(promptFile, "user")

	jobDescription := req.JobDescription
	if jobDescription == "" {
		jobDescription = "Not provided"
	}
	additionalContext := req.AdditionalContext
	if additionalContext == "" {
		additionalContext = "None"
	}

	return prompts.Format(template, map[string]string{
		"EmailType":         string(req.EmailType),
		"JobTitle":          req.JobTitle,
		"CompanyName":       req.CompanyName,
		"RecruiterName":     req.RecruiterName,
		"CandidateName":     req.DisplayName(),
		"JobDescription":    jobDescription,
		"AdditionalContext": additionalContext,
		"TypeInstruction":   TypeInstruction(req.EmailType),
		"ToneGuidance":      ToneGuidance(req.Tone),
		"ResearchBlock":     FormatResearch(research),
		"ProfileBlock":      FormatProfile(req.CandidateProfile),
	})
}

// ToneGuidance returns the guidance block for a tone, defaulting to
// generic guidance for unrecognized values.
func ToneGuidance(tone types.Tone) string {
	return prompts.GetOrDefault(promptFile, "tone-"+string(tone), "tone-default")
}

// TypeInstruction returns the instruction block for an email type,
// defaulting to generic instructions for unrecognized values.
func TypeInstruction(emailType types.EmailType) string {
	return prompts.GetOrDefault(promptFile, "type-"+string(emailType), "type-default")
}

// FormatResearch renders the research result as a fixed-shape text
// block. Empty lists become literal placeholders so the block is
// always well-formed regardless of research richness.
func FormatResearch(research *types.ResearchResult) string {
	var sb strings.Builder

	if research == nil {
		research = types.EmptyResearchResult("", "")
	}

	sb.WriteString("Company:\n")
	if research.Company.Description != "" {
		sb.WriteString(fmt.Sprintf("- Description: %s\n", research.Company.Description))
	} else {
		sb.WriteString(fmt.Sprintf("- Description: %s\n", NoDescriptionPlaceholder))
	}
	if research.Company.Website != "" {
		sb.WriteString(fmt.Sprintf("- Website: %s\n", research.Company.Website))
	}
	sb.WriteString("- Key facts:\n")
	if len(research.Company.KeyInfo) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", NoCompanyInfoPlaceholder))
	} else {
		for _, fact := range research.Company.KeyInfo {
			sb.WriteString(fmt.Sprintf("  - %s\n", fact))
		}
	}
	sb.WriteString("- Recent news:\n")
	if len(research.Company.RecentNews) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", NoRecentNewsPlaceholder))
	} else {
		for _, item := range research.Company.RecentNews {
			sb.WriteString(fmt.Sprintf("  - %s\n", item))
		}
	}

	sb.WriteString("Recruiter:\n")
	if research.Recruiter.Title != "" {
		sb.WriteString(fmt.Sprintf("- Title: %s\n", research.Recruiter.Title))
	}
	if research.Recruiter.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("- LinkedIn: %s\n", research.Recruiter.LinkedIn))
	}
	sb.WriteString("- Background:\n")
	if len(research.Recruiter.Background) == 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", NoRecruiterPlaceholder))
	} else {
		for _, fact := range research.Recruiter.Background {
			sb.WriteString(fmt.Sprintf("  - %s\n", fact))
		}
	}

	return sb.String()
}

// FormatProfile renders the candidate profile as a fixed-shape text
// block. Section headers are always present; empty collections render
// as "No X data provided" placeholders.
func FormatProfile(profile *types.CandidateProfile) string {
	var sb strings.Builder

	sb.WriteString("Identity:\n")
	if profile == nil {
		sb.WriteString(fmt.Sprintf("  %s\n", LimitedProfilePlaceholder))
	} else {
		if profile.Name != "" {
			sb.WriteString(fmt.Sprintf("- Name: %s\n", profile.Name))
		}
		if profile.Title != "" {
			sb.WriteString(fmt.Sprintf("- Title: %s\n", profile.Title))
		}
		if profile.Location != "" {
			sb.WriteString(fmt.Sprintf("- Location: %s\n", profile.Location))
		}
		if profile.LinkedinURL != "" {
			sb.WriteString(fmt.Sprintf("- LinkedIn: %s\n", profile.LinkedinURL))
		}
		if profile.About != "" {
			sb.WriteString(fmt.Sprintf("- About: %s\n", profile.About))
		}
		if profile.Name == "" && profile.Title == "" && profile.About == "" {
			sb.WriteString(fmt.Sprintf("  %s\n", LimitedProfilePlaceholder))
		}
	}

	sb.WriteString("Experience:\n")
	if profile == nil || len(profile.Experiences) == 0 {
		sb.WriteString("  No experience data provided\n")
	} else {
		for _, exp := range profile.Experiences {
			sb.WriteString(fmt.Sprintf("- %s at %s (%s)", exp.Position, exp.Company, dateRange(exp.StartDate, exp.EndDate)))
			if exp.Description != "" {
				sb.WriteString(": " + exp.Description)
			}
			if len(exp.Technologies) > 0 {
				sb.WriteString(" [" + strings.Join(exp.Technologies, ", ") + "]")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Education:\n")
	if profile == nil || len(profile.Education) == 0 {
		sb.WriteString("  No education data provided\n")
	} else {
		for _, edu := range profile.Education {
			sb.WriteString(fmt.Sprintf("- %s in %s, %s (%s)\n",
				edu.Degree, fieldOrGeneral(edu.FieldOfStudy), edu.Institution, dateRange(edu.StartDate, edu.EndDate)))
		}
	}

	sb.WriteString("Skills:\n")
	if profile == nil || len(profile.Skills) == 0 {
		sb.WriteString("  No skills data provided\n")
	} else {
		names := make([]string, 0, len(profile.Skills))
		for _, skill := range profile.Skills {
			if skill.Name != "" {
				names = append(names, skill.Name)
			}
		}
		sb.WriteString("  " + strings.Join(names, ", ") + "\n")
	}

	sb.WriteString("Projects:\n")
	if profile == nil || len(profile.Projects) == 0 {
		sb.WriteString("  No project data provided\n")
	} else {
		for _, proj := range profile.Projects {
			sb.WriteString("- " + proj.Name)
			if proj.Description != "" {
				sb.WriteString(": " + proj.Description)
			}
			if len(proj.Technologies) > 0 {
				sb.WriteString(" [" + strings.Join(proj.Technologies, ", ") + "]")
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Certifications:\n")
	if profile == nil || len(profile.Certificates) == 0 {
		sb.WriteString("  No certification data provided\n")
	} else {
		for _, cert := range profile.Certificates {
			sb.WriteString("- " + cert.Name)
			if cert.Issuer != "" {
				sb.WriteString(" (" + cert.Issuer + ")")
			}
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func dateRange(start, end string) string {
	if start == "" && end == "" {
		return "dates not provided"
	}
	if end == "" {
		end = "present"
	}
	if start == "" {
		return "until " + end
	}
	return start + " to " + end
}

func fieldOrGeneral(field string) string {
	if field == "" {
		return "general studies"
	}
	return field
}
