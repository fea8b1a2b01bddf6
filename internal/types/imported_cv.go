package types

import "time"

// ImportedCVStatus is the review state of an imported CV.
type ImportedCVStatus string

// Review states of an imported CV.
const (
	ImportedCVPending  ImportedCVStatus = "pending"
	ImportedCVApproved ImportedCVStatus = "approved"
	ImportedCVRejected ImportedCVStatus = "rejected"
)

// IsValid reports whether s is a known review state.
func (s ImportedCVStatus) IsValid() bool {
	switch s {
	case ImportedCVPending, ImportedCVApproved, ImportedCVRejected:
		return true
	}
	return false
}

// ImportedCV is a parsed CV waiting in (or past) the review queue.
// The embedded profile is flattened into the JSON document.
type ImportedCV struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	CandidateProfile
	Status       ImportedCVStatus `json:"status"`
	ApprovedBy   string           `json:"approved_by,omitempty"`
	ApprovalDate *time.Time       `json:"approval_date,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	ArchiveKey   string           `json:"archive_key,omitempty"`
	ImportedAt   time.Time        `json:"imported_at"`
}

// RecordID returns the store key of the record.
func (c ImportedCV) RecordID() string { return c.ID }

// CVFilter selects imported CVs by review state.
type CVFilter string

// Filters accepted by the imported-CV listing. CVFilterAll excludes rejected CVs.
const (
	CVFilterAll      CVFilter = "all"
	CVFilterPending  CVFilter = "pending"
	CVFilterApproved CVFilter = "approved"
	CVFilterRejected CVFilter = "rejected"
)

// IsValid reports whether f is a known filter.
func (f CVFilter) IsValid() bool {
	switch f {
	case CVFilterAll, CVFilterPending, CVFilterApproved, CVFilterRejected:
		return true
	}
	return false
}

// Matches reports whether a CV with the given status passes the filter.
func (f CVFilter) Matches(s ImportedCVStatus) bool {
	switch f {
	case CVFilterAll:
		return s == ImportedCVPending || s == ImportedCVApproved
	case CVFilterPending:
		return s == ImportedCVPending
	case CVFilterApproved:
		return s == ImportedCVApproved
	case CVFilterRejected:
		return s == ImportedCVRejected
	}
	return false
}
