package types

import (
	"strings"
	"time"
)

// JobPostingStatus is the publication state of a posting.
type JobPostingStatus string

// Posting states.
const (
	JobPostingDraft  JobPostingStatus = "draft"
	JobPostingOpen   JobPostingStatus = "open"
	JobPostingClosed JobPostingStatus = "closed"
	JobPostingOnHold JobPostingStatus = "on_hold"
)

// IsValid reports whether s is a known posting state.
func (s JobPostingStatus) IsValid() bool {
	switch s {
	case JobPostingDraft, JobPostingOpen, JobPostingClosed, JobPostingOnHold:
		return true
	}
	return false
}

// PositionType is the employment type of a posting.
type PositionType string

// Employment types.
const (
	PositionFullTime   PositionType = "full_time"
	PositionPartTime   PositionType = "part_time"
	PositionContract   PositionType = "contract"
	PositionInternship PositionType = "internship"
)

// IsValid reports whether p is a known employment type.
func (p PositionType) IsValid() bool {
	switch p {
	case PositionFullTime, PositionPartTime, PositionContract, PositionInternship:
		return true
	}
	return false
}

// JobPosting is an open (or past) position candidates apply to.
type JobPosting struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Department     string           `json:"department"`
	Requirements   string           `json:"requirements,omitempty"`
	PositionType   PositionType     `json:"position_type"`
	SalaryRangeMin *float64         `json:"salary_range_min,omitempty"`
	SalaryRangeMax *float64         `json:"salary_range_max,omitempty"`
	Status         JobPostingStatus `json:"status"`
	PostedDate     time.Time        `json:"posted_date"`
	ClosingDate    *time.Time       `json:"closing_date,omitempty"`
	Applications   int              `json:"applications"`
}

// RecordID returns the store key of the record.
func (p JobPosting) RecordID() string { return p.ID }

// JobPostingFilter narrows the posting list. Search matches title and
// description case-insensitively.
type JobPostingFilter struct {
	Department   string
	Status       string
	PositionType string
	Search       string
}

// Matches reports whether p passes the filter.
func (f JobPostingFilter) Matches(p JobPosting) bool {
	if f.Department != "" && !strings.EqualFold(p.Department, f.Department) {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(p.Status) != f.Status {
		return false
	}
	if f.PositionType != "" && string(p.PositionType) != f.PositionType {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	return true
}
