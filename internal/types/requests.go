package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrSalaryRange is returned when the salary minimum exceeds the maximum.
var ErrSalaryRange = errors.New("salary_range_min must not exceed salary_range_max")

// ReviewRequest approves or rejects an imported CV.
type ReviewRequest struct {
	Approved *bool  `json:"approved" validate:"required"`
	Notes    string `json:"notes,omitempty" validate:"max=2000"`
}

// ScheduleInterviewRequest represents the request to schedule an interview.
// Date uses YYYY-MM-DD and the optional Time uses HH:MM.
type ScheduleInterviewRequest struct {
	CandidateID     string        `json:"candidate_id" validate:"required"`
	InterviewerID   string        `json:"interviewer_id" validate:"required"`
	Date            string        `json:"date" validate:"required,datetime=2006-01-02"`
	Time            string        `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	InterviewType   InterviewType `json:"interview_type,omitempty" validate:"max=64"`
	DurationMinutes int           `json:"duration_minutes,omitempty" validate:"omitempty,min=1,max=480"`
	Location        string        `json:"location,omitempty"`
	ExpectedRating  int           `json:"expected_rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// ScheduledAt combines Date and Time in loc. A missing time means midnight.
func (r *ScheduleInterviewRequest) ScheduledAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if r.Time == "" {
		t, err := time.ParseInLocation("2006-01-02", r.Date, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
		}
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", r.Date, r.Time, err)
	}
	return t, nil
}

// CompleteInterviewRequest records the outcome of an interview.
type CompleteInterviewRequest struct {
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Feedback string `json:"feedback,omitempty"`
}

// UpdateStatusRequest moves a candidate to another hiring stage.
type UpdateStatusRequest struct {
	Status CandidateStatus `json:"status" validate:"required"`
}

// RateCandidateRequest sets the recruiter rating of a candidate.
type RateCandidateRequest struct {
	Rating int `json:"rating" validate:"min=0,max=5"`
}

// CreateCandidateRequest registers an applicant for a posting.
type CreateCandidateRequest struct {
	JobPostingID string          `json:"job_posting_id" validate:"required"`
	FirstName    string          `json:"first_name" validate:"required"`
	LastName     string          `json:"last_name" validate:"required"`
	Email        string          `json:"email" validate:"required,email"`
	Phone        string          `json:"phone,omitempty"`
	Resume       string          `json:"resume,omitempty"`
	CoverLetter  string          `json:"cover_letter,omitempty"`
	Source       CandidateSource `json:"source,omitempty" validate:"omitempty,oneof=job_board linkedin referral direct recruitment_agency other"`
	AssignedTo   string          `json:"assigned_to,omitempty"`
	Notes        string          `json:"notes,omitempty"`
}

// JobPostingInput carries the editable fields of a posting.
type JobPostingInput struct {
	Title          string           `json:"title" validate:"required,max=200"`
	Description    string           `json:"description" validate:"required"`
	Department     string           `json:"department" validate:"required,max=100"`
	Requirements   string           `json:"requirements,omitempty"`
	PositionType   PositionType     `json:"position_type,omitempty" validate:"omitempty,oneof=full_time part_time contract internship"`
	SalaryRangeMin *float64         `json:"salary_range_min,omitempty" validate:"omitempty,gte=0"`
	SalaryRangeMax *float64         `json:"salary_range_max,omitempty" validate:"omitempty,gte=0"`
	Status         JobPostingStatus `json:"status,omitempty" validate:"omitempty,oneof=draft open closed on_hold"`
	ClosingDate    *time.Time       `json:"closing_date,omitempty"`
}

// Validate validates the ReviewRequest using the validator.
func (r *ReviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScheduleInterviewRequest using the validator.
func (r *ScheduleInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CompleteInterviewRequest using the validator.
func (r *CompleteInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateStatusRequest using the validator.
func (r *UpdateStatusRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RateCandidateRequest using the validator.
func (r *RateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobPostingInput using the validator.
// Salary bounds are checked separately because they are optional pointers.
func (r *JobPostingInput) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.SalaryRangeMin != nil && r.SalaryRangeMax != nil && *r.SalaryRangeMin > *r.SalaryRangeMax {
		return ErrSalaryRange
	}
	return nil
}
