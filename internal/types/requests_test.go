//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleInterviewRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request ScheduleInterviewRequest
		wantErr bool
	}{
		{
			name:    "valid with time",
			request: ScheduleInterviewRequest{CandidateID: "c1", InterviewerID: "emp-1", Date: "2026-03-02", Time: "14:30"},
		},
		{
			name:    "valid without time",
			request: ScheduleInterviewRequest{CandidateID: "c1", InterviewerID: "emp-1", Date: "2026-03-02"},
		},
		{
			name:    "missing candidate",
			request: ScheduleInterviewRequest{InterviewerID: "emp-1", Date: "2026-03-02"},
			wantErr: true,
		},
		{
			name:    "missing interviewer",
			request: ScheduleInterviewRequest{CandidateID: "c1", Date: "2026-03-02"},
			wantErr: true,
		},
		{
			name:    "missing date",
			request: ScheduleInterviewRequest{CandidateID: "c1", InterviewerID: "emp-1"},
			wantErr: true,
		},
		{
			name:    "bad date",
			request: ScheduleInterviewRequest{CandidateID: "c1", InterviewerID: "emp-1", Date: "02/03/2026"},
			wantErr: true,
		},
		{
			name:    "bad expected rating",
			request: ScheduleInterviewRequest{CandidateID: "c1", InterviewerID: "emp-1", Date: "2026-03-02", ExpectedRating: 9},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScheduleInterviewRequest_ScheduledAt(t *testing.T) {
	req := ScheduleInterviewRequest{Date: "2026-03-02", Time: "14:30"}
	at, err := req.ScheduledAt(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC), at)

	req.Time = ""
	at, err = req.ScheduledAt(nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), at)
}

func TestCompleteInterviewRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CompleteInterviewRequest{Rating: 1}).Validate())
	assert.NoError(t, (&CompleteInterviewRequest{Rating: 5}).Validate())
	assert.Error(t, (&CompleteInterviewRequest{Rating: 0}).Validate())
	assert.Error(t, (&CompleteInterviewRequest{Rating: 6}).Validate())
}

func TestJobPostingInput_Validate(t *testing.T) {
	low, high := 50000.0, 90000.0

	valid := JobPostingInput{Title: "Engineer", Description: "Build things", Department: "Engineering"}
	assert.NoError(t, valid.Validate())

	missing := JobPostingInput{Title: "Engineer", Description: "Build things"}
	assert.Error(t, missing.Validate())

	badType := valid
	badType.PositionType = "seasonal"
	assert.Error(t, badType.Validate())

	salary := valid
	salary.SalaryRangeMin = &high
	salary.SalaryRangeMax = &low
	assert.Error(t, salary.Validate())

	salary.SalaryRangeMin = &low
	salary.SalaryRangeMax = &high
	assert.NoError(t, salary.Validate())
}

func TestCreateCandidateRequest_Validate(t *testing.T) {
	req := CreateCandidateRequest{JobPostingID: "job-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	assert.NoError(t, req.Validate())

	req.Source = "billboard"
	assert.Error(t, req.Validate())

	req.Source = SourceReferral
	req.Email = "not-an-email"
	assert.Error(t, req.Validate())
}

func TestReviewRequest_Validate(t *testing.T) {
	yes := true
	assert.NoError(t, (&ReviewRequest{Approved: &yes}).Validate())
	assert.Error(t, (&ReviewRequest{}).Validate())
}
