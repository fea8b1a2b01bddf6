//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateStatus_IsTerminal(t *testing.T) {
	terminal := map[CandidateStatus]bool{
		CandidateHired:     true,
		CandidateRejected:  true,
		CandidateWithdrawn: true,
	}
	for _, s := range CandidateStatuses {
		assert.True(t, s.IsValid(), "status %s should be valid", s)
		assert.Equal(t, terminal[s], s.IsTerminal(), "status %s", s)
	}
	assert.False(t, CandidateStatus("archived").IsValid())
}

func TestInterviewStage(t *testing.T) {
	tests := []struct {
		completed int
		want      CandidateStatus
	}{
		{0, CandidateInterview1},
		{1, CandidateInterview2},
		{2, CandidateInterview3},
		{5, CandidateInterview3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InterviewStage(tt.completed), "completed=%d", tt.completed)
	}
}

func TestTransitionPolicies(t *testing.T) {
	assert.True(t, AllowAny(CandidateHired, CandidateScreening))
	assert.False(t, AllowAny(CandidateNew, "unknown"))

	assert.True(t, StrictTransitions(CandidateNew, CandidateOffered))
	assert.True(t, StrictTransitions(CandidateRejected, CandidateRejected))
	assert.False(t, StrictTransitions(CandidateRejected, CandidateScreening))
	assert.False(t, StrictTransitions(CandidateWithdrawn, CandidateNew))
}

func TestCandidateFilter_Matches(t *testing.T) {
	c := Candidate{JobPostingID: "job-1", Status: CandidateScreening}

	assert.True(t, CandidateFilter{}.Matches(c))
	assert.True(t, CandidateFilter{Status: "all"}.Matches(c))
	assert.True(t, CandidateFilter{JobPostingID: "job-1", Status: "screening"}.Matches(c))
	assert.False(t, CandidateFilter{JobPostingID: "job-2"}.Matches(c))
	assert.False(t, CandidateFilter{Status: "offered"}.Matches(c))
}

func TestCandidate_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Candidate{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Candidate{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", Candidate{LastName: "Lovelace"}.FullName())
}

func TestCVFilter_Matches(t *testing.T) {
	assert.True(t, CVFilterAll.Matches(ImportedCVPending))
	assert.True(t, CVFilterAll.Matches(ImportedCVApproved))
	assert.False(t, CVFilterAll.Matches(ImportedCVRejected))
	assert.True(t, CVFilterRejected.Matches(ImportedCVRejected))
	assert.False(t, CVFilter("archived").IsValid())
}

func TestImportedCV_JSONFlattensProfile(t *testing.T) {
	cv := ImportedCV{
		ID:       "cv-1",
		FileName: "jane.pdf",
		CandidateProfile: CandidateProfile{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		},
		Status:     ImportedCVPending,
		ImportedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(cv)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "Jane Doe", raw["full_name"])
	assert.Equal(t, "pending", raw["status"])
	assert.NotContains(t, raw, "CandidateProfile")
}

func TestCandidateProfile_MissingFields(t *testing.T) {
	p := CandidateProfile{FullName: "Jane", Skills: []string{"Go"}}
	missing := p.MissingFields()
	assert.Contains(t, missing, "email")
	assert.Contains(t, missing, "summary")
	assert.NotContains(t, missing, "full_name")
	assert.NotContains(t, missing, "skills")

	p.Normalize()
	assert.NotNil(t, p.Education)
	assert.NotNil(t, p.Certificates)
}

func TestJobPostingFilter_Matches(t *testing.T) {
	p := JobPosting{
		Title:        "Backend Engineer",
		Description:  "Build payment services in Go",
		Department:   "Engineering",
		PositionType: PositionFullTime,
		Status:       JobPostingOpen,
	}

	tests := []struct {
		name   string
		filter JobPostingFilter
		want   bool
	}{
		{"empty filter", JobPostingFilter{}, true},
		{"department case-insensitive", JobPostingFilter{Department: "engineering"}, true},
		{"other department", JobPostingFilter{Department: "Sales"}, false},
		{"status", JobPostingFilter{Status: "open"}, true},
		{"closed status", JobPostingFilter{Status: "closed"}, false},
		{"position type", JobPostingFilter{PositionType: "contract"}, false},
		{"search title", JobPostingFilter{Search: "backend"}, true},
		{"search description", JobPostingFilter{Search: "PAYMENT"}, true},
		{"search miss", JobPostingFilter{Search: "designer"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(p))
		})
	}
}
