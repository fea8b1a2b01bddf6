package types

import "time"

// CandidateStatus is the hiring stage of a job-posting applicant.
type CandidateStatus string

// Hiring stages. CandidateNew is the initial stage.
const (
	CandidateNew         CandidateStatus = "new"
	CandidateScreening   CandidateStatus = "screening"
	CandidateInterview1  CandidateStatus = "interview_1"
	CandidateInterview2  CandidateStatus = "interview_2"
	CandidateInterview3  CandidateStatus = "interview_3"
	CandidateOffered     CandidateStatus = "offered"
	CandidateHired       CandidateStatus = "hired"
	CandidateRejected    CandidateStatus = "rejected"
	CandidateWithdrawn   CandidateStatus = "withdrawn"
	CandidateWaitingList CandidateStatus = "waiting_list"
)

// CandidateStatuses lists every hiring stage in pipeline order.
var CandidateStatuses = []CandidateStatus{
	CandidateNew,
	CandidateScreening,
	CandidateInterview1,
	CandidateInterview2,
	CandidateInterview3,
	CandidateOffered,
	CandidateHired,
	CandidateRejected,
	CandidateWithdrawn,
	CandidateWaitingList,
}

// IsValid reports whether s is a known hiring stage.
func (s CandidateStatus) IsValid() bool {
	for _, known := range CandidateStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s ends the hiring process.
func (s CandidateStatus) IsTerminal() bool {
	return s == CandidateHired || s == CandidateRejected || s == CandidateWithdrawn
}

// InterviewStage maps the number of completed interviews to the stage
// a candidate enters when the next interview is scheduled.
func InterviewStage(completed int) CandidateStatus {
	switch {
	case completed <= 0:
		return CandidateInterview1
	case completed == 1:
		return CandidateInterview2
	default:
		return CandidateInterview3
	}
}

// TransitionPolicy decides whether a candidate may move from one stage to another.
type TransitionPolicy func(from, to CandidateStatus) bool

// AllowAny permits every move to a known stage.
func AllowAny(_, to CandidateStatus) bool {
	return to.IsValid()
}

// StrictTransitions permits moves to known stages but never out of a terminal one.
func StrictTransitions(from, to CandidateStatus) bool {
	if !to.IsValid() {
		return false
	}
	if from.IsTerminal() && from != to {
		return false
	}
	return true
}

// CandidateSource records how an applicant found the posting.
type CandidateSource string

// Applicant sources.
const (
	SourceJobBoard          CandidateSource = "job_board"
	SourceLinkedIn          CandidateSource = "linkedin"
	SourceReferral          CandidateSource = "referral"
	SourceDirect            CandidateSource = "direct"
	SourceRecruitmentAgency CandidateSource = "recruitment_agency"
	SourceOther             CandidateSource = "other"
)

// IsValid reports whether s is a known source.
func (s CandidateSource) IsValid() bool {
	switch s {
	case SourceJobBoard, SourceLinkedIn, SourceReferral, SourceDirect, SourceRecruitmentAgency, SourceOther:
		return true
	}
	return false
}

// Candidate is an applicant to a job posting.
type Candidate struct {
	ID           string          `json:"id"`
	JobPostingID string          `json:"job_posting_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone,omitempty"`
	Resume       string          `json:"resume,omitempty"`
	CoverLetter  string          `json:"cover_letter,omitempty"`
	Source       CandidateSource `json:"source"`
	Status       CandidateStatus `json:"status"`
	Rating       int             `json:"rating"`
	Notes        string          `json:"notes,omitempty"`
	AssignedTo   string          `json:"assigned_to,omitempty"`
	AppliedDate  time.Time       `json:"applied_date"`
	LastUpdated  time.Time       `json:"last_updated"`
}

// RecordID returns the store key of the record.
func (c Candidate) RecordID() string { return c.ID }

// FullName joins first and last name.
func (c Candidate) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CandidateFilter selects candidates by posting and stage. An empty or "all"
// status matches every stage.
type CandidateFilter struct {
	JobPostingID string
	Status       string
}

// Matches reports whether c passes the filter.
func (f CandidateFilter) Matches(c Candidate) bool {
	if f.JobPostingID != "" && c.JobPostingID != f.JobPostingID {
		return false
	}
	if f.Status != "" && f.Status != "all" && string(c.Status) != f.Status {
		return false
	}
	return true
}
