package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyResearchResult(t *testing.T) {
	result := EmptyResearchResult("Acme", "Jane Lee")

	assert.Equal(t, "Acme", result.Company.CompanyName)
	assert.Equal(t, "Jane Lee", result.Recruiter.Name)
	assert.NotNil(t, result.Company.KeyInfo)
	assert.NotNil(t, result.Company.RecentNews)
	assert.NotNil(t, result.Recruiter.Background)
	assert.Empty(t, result.Company.KeyInfo)
}

func TestResearchResult_Normalize_NoNullsInJSON(t *testing.T) {
	result := &ResearchResult{
		Company:   CompanyResearch{CompanyName: "Acme"},
		Recruiter: PersonResearch{Name: "Jane Lee"},
	}
	result.Normalize()

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
	assert.Contains(t, string(data), `"keyInfo":[]`)
	assert.Contains(t, string(data), `"recentNews":[]`)
	assert.Contains(t, string(data), `"background":[]`)
}

func TestCandidateProfile_SkillNames(t *testing.T) {
	profile := &CandidateProfile{
		Skills: []Skill{{Name: "Go"}, {Name: "Rust"}, {Name: "SQL"}, {Name: "Python"}},
	}

	assert.Equal(t, []string{"Go", "Rust", "SQL"}, profile.SkillNames(3))
	assert.Equal(t, []string{"Go"}, profile.SkillNames(1))
}

func TestCandidateProfile_SkillNames_Absent(t *testing.T) {
	var profile *CandidateProfile
	assert.Nil(t, profile.SkillNames(3))
	assert.Nil(t, (&CandidateProfile{}).SkillNames(3))
}

func TestCandidateProfile_SkillNames_SkipsUnnamed(t *testing.T) {
	profile := &CandidateProfile{
		Skills: []Skill{{Name: ""}, {Name: "Go"}},
	}
	assert.Equal(t, []string{"Go"}, profile.SkillNames(3))
}
