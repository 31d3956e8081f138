package types

// CandidateProfile is an optional rich snapshot of the applicant.
// Every field is optional; absence of the whole profile is valid and
// degrades to generic phrasing in prompts and fallback output.
type CandidateProfile struct {
	Name         string        `json:"name,omitempty"`
	Email        string        `json:"email,omitempty"`
	About        string        `json:"about,omitempty"`
	Title        string        `json:"title,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	Location     string        `json:"location,omitempty"`
	LinkedinURL  string        `json:"linkedinUrl,omitempty"`
	Experiences  []Experience  `json:"experiences,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Projects     []Project     `json:"projects,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
}

// Experience represents one professional position
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Education represents one degree or program
type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	GPA          string `json:"gpa,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Skill represents one named skill
type Skill struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Project represents one personal or professional project
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
}

// Certificate represents one professional certification
type Certificate struct {
	Name           string `json:"name"`
	Issuer         string `json:"issuer,omitempty"`
	DateIssued     string `json:"dateIssued,omitempty"`
	ExpirationDate string `json:"expirationDate,omitempty"`
	CredentialID   string `json:"credentialId,omitempty"`
	URL            string `json:"url,omitempty"`
}

// SkillNames returns up to max skill names from the profile.
// Returns nil when the profile or its skills are absent.
func (p *CandidateProfile) SkillNames(max int) []string {
	if p == nil || len(p.Skills) == 0 || max <= 0 {
		return nil
	}
	names := make([]string, 0, max)
	for _, s := range p.Skills {
		if s.Name == "" {
			continue
		}
		names = append(names, s.Name)
		if len(names) == max {
			break
		}
	}
	return names
}
