// Package fallback synthesizes a complete outreach email from request
// data alone, with no external calls and no failure modes. It is used
// whenever the LLM call fails or returns malformed output.
package fallback

import (
	"fmt"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

// Truncation limits for profile-derived sentences.
const (
	experienceDescLimit = 80
	projectDescLimit    = 60
)

// GenericSkills substitutes when the profile carries no skill names.
const GenericSkills = "relevant technical skills"

// ClosingGratitude is the literal opening of the mandatory closing paragraph.
const ClosingGratitude = "Thank you so much for your time."

// LinkedInUnavailable substitutes for an absent LinkedIn URL.
const LinkedInUnavailable = "(available upon request)"

// suggestedActions is constant: the fallback's action list does not
// vary by email type.
var suggestedActions = []string{
	"Follow up in 5-7 business days if you have not heard back",
	"Connect with the recruiter on LinkedIn with a short personal note",
	"Research recent company news to reference in your next message",
}

// Generate produces a complete email for the request. It is pure and
// total: any combination of present and absent optional fields yields
// non-empty subject and body and exactly three suggested actions.
func Generate(req *types.GenerateEmailRequest) *types.GeneratedEmail {
	name := req.DisplayName()

	return &types.GeneratedEmail{
		Subject:          subjectFor(req, name),
		Body:             bodyFor(req, name),
		SuggestedActions: append([]string(nil), suggestedActions...),
		Fallback:         true,
	}
}

// subjectFor selects the subject template for the email type,
// defaulting to the application template for unrecognized types.
func subjectFor(req *types.GenerateEmailRequest, name string) string {
	switch req.EmailType {
	case types.EmailFollowUp:
		return fmt.Sprintf("Following up: %s application - %s", req.JobTitle, name)
	case types.EmailThankYou:
		return fmt.Sprintf("Thank you - %s", name)
	case types.EmailInquiry:
		return fmt.Sprintf("Question about the %s role at %s", req.JobTitle, req.CompanyName)
	case types.EmailWithdrawal:
		return fmt.Sprintf("Withdrawing my %s application - %s", req.JobTitle, name)
	default:
		return fmt.Sprintf("Application for %s - %s", req.JobTitle, name)
	}
}

// bodyFor assembles the body: greeting, type-specific opening,
// profile-derived evidence, and the mandatory closing paragraph.
func bodyFor(req *types.GenerateEmailRequest, name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Dear %s,\n\n", req.RecruiterName))
	sb.WriteString(openingFor(req))
	sb.WriteString("\n\n")
	sb.WriteString(evidenceParagraph(req.CandidateProfile))
	sb.WriteString("\n\n")
	sb.WriteString(closingParagraph(req.CandidateProfile))
	sb.WriteString(fmt.Sprintf("\n\nBest regards,\n%s", name))

	return sb.String()
}

// openingFor selects the opening paragraph for the email type,
// defaulting to the application opening for unrecognized types.
func openingFor(req *types.GenerateEmailRequest) string {
	switch req.EmailType {
	case types.EmailFollowUp:
		return fmt.Sprintf(
			"I recently applied for the %s position at %s and wanted to follow up on the status of my application. I remain very interested in the role and would welcome the chance to discuss how I can contribute.",
			req.JobTitle, req.CompanyName)
	case types.EmailThankYou:
		return fmt.Sprintf(
			"Thank you for taking the time to speak with me about the %s position at %s. Our conversation strengthened my interest in the role and the team.",
			req.JobTitle, req.CompanyName)
	case types.EmailInquiry:
		return fmt.Sprintf(
			"I am reaching out to learn more about the %s position at %s before submitting my application. I would appreciate any additional detail you can share about the role and the team it sits in.",
			req.JobTitle, req.CompanyName)
	case types.EmailWithdrawal:
		return fmt.Sprintf(
			"I am writing to withdraw my application for the %s position at %s. I appreciate the consideration and hope to stay in touch for future opportunities.",
			req.JobTitle, req.CompanyName)
	default:
		return fmt.Sprintf(
			"I would like to apply for the %s position at %s. After reviewing the role, I believe my background is a strong match for what your team is looking for.",
			req.JobTitle, req.CompanyName)
	}
}

// evidenceParagraph builds the skills, experience and project sentences
// from whatever profile data is present. The project sentence is
// omitted entirely when no project exists; skills and experience get
// generic substitutes instead.
func evidenceParagraph(profile *types.CandidateProfile) string {
	var sentences []string

	skills := GenericSkills
	if names := profile.SkillNames(3); len(names) > 0 {
		skills = strings.Join(names, ", ")
	}
	sentences = append(sentences, fmt.Sprintf("My core strengths include %s.", skills))

	if profile != nil && len(profile.Experiences) > 0 {
		exp := profile.Experiences[0]
		sentence := fmt.Sprintf("Most recently I worked as %s at %s", exp.Position, exp.Company)
		if exp.Description != "" {
			sentence += ", where I " + lowerFirst(truncate(exp.Description, experienceDescLimit))
		}
		sentences = append(sentences, sentence+".")
	} else {
		sentences = append(sentences, "I have been gaining valuable experience across projects and roles that prepared me for this position.")
	}

	if profile != nil && len(profile.Projects) > 0 {
		proj := profile.Projects[0]
		sentence := fmt.Sprintf("One project I am proud of is %s", proj.Name)
		if proj.Description != "" {
			sentence += ", " + lowerFirst(truncate(proj.Description, projectDescLimit))
		}
		sentences = append(sentences, sentence+".")
	}

	return strings.Join(sentences, " ")
}

// closingParagraph is the mandatory gratitude/resume/LinkedIn ending.
func closingParagraph(profile *types.CandidateProfile) string {
	linkedin := LinkedInUnavailable
	if profile != nil && profile.LinkedinURL != "" {
		linkedin = profile.LinkedinURL
	}
	return fmt.Sprintf(
		"%s I have attached my resume for your review, and you can find my LinkedIn profile here: %s. I look forward to hearing from you.",
		ClosingGratitude, linkedin)
}

// truncate shortens s to limit characters, appending an ellipsis when
// anything was cut.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

// lowerFirst lowercases the first rune so a description reads naturally
// mid-sentence.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
