package types

import "time"

// InterviewStatus is the lifecycle state of an interview.
type InterviewStatus string

// Interview states. Completed and cancelled are terminal.
const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
)

// IsTerminal reports whether the interview can no longer change.
func (s InterviewStatus) IsTerminal() bool {
	return s == InterviewCompleted || s == InterviewCancelled
}

// InterviewType labels the kind of interview. Imported-CV interviews may use
// free-text labels, so any non-empty value is accepted.
type InterviewType string

// Well-known interview types.
const (
	InterviewPhone      InterviewType = "phone"
	InterviewTechnical  InterviewType = "technical"
	InterviewBehavioral InterviewType = "behavioral"
	InterviewFinal      InterviewType = "final"
)

// IsKnown reports whether t is one of the well-known types.
func (t InterviewType) IsKnown() bool {
	switch t {
	case InterviewPhone, InterviewTechnical, InterviewBehavioral, InterviewFinal:
		return true
	}
	return false
}

// Interview defaults.
const (
	DefaultInterviewDuration = 60
	DefaultInterviewLocation = "Virtual"
)

// Interview is a scheduled meeting with a candidate. CandidateID names either
// a job-posting Candidate or an approved ImportedCV.
type Interview struct {
	ID              string          `json:"id"`
	CandidateID     string          `json:"candidate_id"`
	CandidateName   string          `json:"candidate_name,omitempty"`
	InterviewType   InterviewType   `json:"interview_type"`
	Status          InterviewStatus `json:"status"`
	ScheduledDate   time.Time       `json:"scheduled_date"`
	DurationMinutes int             `json:"duration_minutes"`
	InterviewerID   string          `json:"interviewer_id"`
	Location        string          `json:"location"`
	Feedback        string          `json:"feedback,omitempty"`
	Rating          int             `json:"rating"`
	ExpectedRating  int             `json:"expected_rating,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RecordID returns the store key of the record.
func (i Interview) RecordID() string { return i.ID }
