package types

// CompanyResearch holds best-effort intelligence about the target company.
// List fields are always non-nil arrays; absent information is an empty
// array or an omitted optional field, never a null.
type CompanyResearch struct {
	CompanyName string   `json:"companyName"`
	Description string   `json:"description,omitempty"`
	Website     string   `json:"website,omitempty"`
	KeyInfo     []string `json:"keyInfo"`
	RecentNews  []string `json:"recentNews"`
}

// PersonResearch holds best-effort intelligence about the recruiter
type PersonResearch struct {
	Name       string   `json:"name"`
	Title      string   `json:"title,omitempty"`
	LinkedIn   string   `json:"linkedIn,omitempty"`
	Background []string `json:"background"`
}

// ResearchResult aggregates company and recruiter research. It is
// always present in generation responses, even when all-empty.
type ResearchResult struct {
	Company   CompanyResearch `json:"company"`
	Recruiter PersonResearch  `json:"recruiter"`
}

// EmptyResearchResult returns a well-formed all-empty result for the
// given names. Used when research fails or finds nothing.
func EmptyResearchResult(companyName, recruiterName string) *ResearchResult {
	return &ResearchResult{
		Company: CompanyResearch{
			CompanyName: companyName,
			KeyInfo:     []string{},
			RecentNews:  []string{},
		},
		Recruiter: PersonResearch{
			Name:       recruiterName,
			Background: []string{},
		},
	}
}

// Normalize replaces nil list fields with empty arrays so the JSON
// encoding never contains nulls.
func (r *ResearchResult) Normalize() {
	if r.Company.KeyInfo == nil {
		r.Company.KeyInfo = []string{}
	}
	if r.Company.RecentNews == nil {
		r.Company.RecentNews = []string{}
	}
	if r.Recruiter.Background == nil {
		r.Recruiter.Background = []string{}
	}
}
