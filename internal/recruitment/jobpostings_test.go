package recruitment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentdesk/internal/types"
)

func TestJobPostings_CreateDefaults(t *testing.T) {
	svc, _ := newTestService(t, Options{})

	p := seedPosting(t, svc)

	assert.Equal(t, types.JobPostingOpen, p.Status)
	assert.Equal(t, types.PositionFullTime, p.PositionType)
	assert.Zero(t, p.Applications)
	assert.NotEmpty(t, p.ID)
}

func TestJobPostings_CreateValidation(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	lo, hi := 50000.0, 40000.0

	tests := []struct {
		name  string
		in    types.JobPostingInput
		field string
	}{
		{"missing title", types.JobPostingInput{Title: "  ", Description: "d", Department: "Eng"}, "title"},
		{"missing description", types.JobPostingInput{Title: "t", Department: "Eng"}, "description"},
		{"missing department", types.JobPostingInput{Title: "t", Description: "d"}, "department"},
		{"bad status", types.JobPostingInput{Title: "t", Description: "d", Department: "Eng", Status: "paused"}, "status"},
		{"inverted salary", types.JobPostingInput{Title: "t", Description: "d", Department: "Eng", SalaryRangeMin: &lo, SalaryRangeMax: &hi}, "salary_range_min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.JobPostings.Create(context.Background(), tt.in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestJobPostings_UpdateAndDelete(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()
	p := seedPosting(t, svc)

	updated, _, err := svc.JobPostings.Update(ctx, p.ID, types.JobPostingInput{
		Title:       "Staff Engineer",
		Description: "Lead Go services",
		Department:  "Engineering",
		Status:      types.JobPostingOnHold,
	})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Title)
	assert.Equal(t, types.JobPostingOnHold, updated.Status)
	assert.Equal(t, types.PositionFullTime, updated.PositionType)
	assert.Equal(t, p.PostedDate, updated.PostedDate)

	_, err = svc.JobPostings.Delete(ctx, p.ID)
	require.NoError(t, err)
	_, err = svc.JobPostings.Get(ctx, p.ID)
	assert.True(t, IsNotFound(err))

	_, err = svc.JobPostings.Delete(ctx, p.ID)
	assert.True(t, IsNotFound(err))
	_, _, err = svc.JobPostings.Update(ctx, p.ID, types.JobPostingInput{Title: "t", Description: "d", Department: "Eng"})
	assert.True(t, IsNotFound(err))
}

func TestJobPostings_ListFilters(t *testing.T) {
	svc, _ := newTestService(t, Options{})
	ctx := context.Background()

	inputs := []types.JobPostingInput{
		{Title: "Backend Engineer", Description: "Go and PostgreSQL", Department: "Engineering"},
		{Title: "Recruiter", Description: "Hire engineers", Department: "People", PositionType: types.PositionContract},
		{Title: "Data Analyst", Description: "Dashboards", Department: "Engineering", Status: types.JobPostingDraft},
	}
	for _, in := range inputs {
		_, _, err := svc.JobPostings.Create(ctx, in)
		require.NoError(t, err)
	}

	tests := []struct {
		name   string
		filter types.JobPostingFilter
		want   []string
	}{
		{"no filter newest first", types.JobPostingFilter{}, []string{"Data Analyst", "Recruiter", "Backend Engineer"}},
		{"department case insensitive", types.JobPostingFilter{Department: "engineering"}, []string{"Data Analyst", "Backend Engineer"}},
		{"status", types.JobPostingFilter{Status: "open"}, []string{"Recruiter", "Backend Engineer"}},
		{"status all", types.JobPostingFilter{Status: "all"}, []string{"Data Analyst", "Recruiter", "Backend Engineer"}},
		{"position type", types.JobPostingFilter{PositionType: "contract"}, []string{"Recruiter"}},
		{"search description", types.JobPostingFilter{Search: "ENGINEERS"}, []string{"Recruiter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := svc.JobPostings.List(ctx, tt.filter)
			require.NoError(t, err)
			titles := []string{}
			for _, p := range list {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}
