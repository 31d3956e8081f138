// Package types provides type definitions for structured data used throughout the outreach-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// EmailType identifies the kind of outreach email being generated
type EmailType string

// Supported email types. Unrecognized values are not rejected; prompt
// construction and the fallback generator resolve them to the
// application templates.
const (
	EmailApplication EmailType = "application"
	EmailFollowUp    EmailType = "follow-up"
	EmailThankYou    EmailType = "thank-you"
	EmailInquiry     EmailType = "inquiry"
	EmailWithdrawal  EmailType = "withdrawal"
)

// Tone identifies the writing voice requested for the email
type Tone string

// Supported tones. Unrecognized values resolve to generic guidance.
const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneCasual       Tone = "casual"
)

// MissingFieldsMessage is the error message returned when any required
// request field is absent. Clients match on this string.
const MissingFieldsMessage = "Missing required fields: jobTitle, companyName, recruiterName, emailType"

// DefaultCandidateName substitutes for an absent candidateName.
const DefaultCandidateName = "Candidate"

// GenerateEmailRequest represents the request body for email generation
type GenerateEmailRequest struct {
	JobTitle          string            `json:"jobTitle" validate:"required"`
	CompanyName       string            `json:"companyName" validate:"required"`
	RecruiterName     string            `json:"recruiterName" validate:"required"`
	JobDescription    string            `json:"jobDescription,omitempty"`
	CandidateName     string            `json:"candidateName,omitempty"`
	EmailType         EmailType         `json:"emailType" validate:"required"`
	Tone              Tone              `json:"tone,omitempty"`
	AdditionalContext string            `json:"additionalContext,omitempty"`
	CandidateProfile  *CandidateProfile `json:"candidateProfile,omitempty"`
}

// Validate checks that the four required fields are present.
// All other fields, including unrecognized emailType/tone values,
// are accepted and resolved downstream.
func (r *GenerateEmailRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// DisplayName returns the candidate name to use in generated text,
// substituting the default when none was supplied.
func (r *GenerateEmailRequest) DisplayName() string {
	if r.CandidateName != "" {
		return r.CandidateName
	}
	if r.CandidateProfile != nil && r.CandidateProfile.Name != "" {
		return r.CandidateProfile.Name
	}
	return DefaultCandidateName
}

// GeneratedEmail is the final output contract. Subject and Body are
// always non-empty and SuggestedActions is always an array, whether
// the content came from the LLM or the fallback generator.
type GeneratedEmail struct {
	Subject          string          `json:"subject"`
	Body             string          `json:"body"`
	SuggestedActions []string        `json:"suggestedActions"`
	ResearchData     *ResearchResult `json:"researchData"`
	Fallback         bool            `json:"-"`
}
