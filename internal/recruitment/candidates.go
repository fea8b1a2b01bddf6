package recruitment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talentdesk/internal/types"
)

// Candidates drives the hiring stage of job-posting applicants. Status
// changes commit unconditionally once the policy allows them; confirming
// with the user is the caller's job.
type Candidates struct {
	base
	repo     Repository[types.Candidate]
	postings Repository[types.JobPosting]
	policy   types.TransitionPolicy
}

// Create registers an applicant in the new stage and bumps the posting's
// application count.
func (s *Candidates) Create(ctx context.Context, req types.CreateCandidateRequest) (*types.Candidate, SyncState, error) {
	if err := req.Validate(); err != nil {
		return nil, "", fromValidator(err)
	}
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	posting, err := s.postings.Get(ctx, req.JobPostingID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load job posting: %w", err)
	}
	if posting == nil {
		return nil, "", &ValidationError{Field: "job_posting_id", Message: "unknown job posting"}
	}

	source := req.Source
	if source == "" {
		source = types.SourceDirect
	}
	now := s.now()
	c := types.Candidate{
		ID:           newID(),
		JobPostingID: req.JobPostingID,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        req.Phone,
		Resume:       req.Resume,
		CoverLetter:  req.CoverLetter,
		Source:       source,
		Status:       types.CandidateNew,
		Notes:        req.Notes,
		AssignedTo:   req.AssignedTo,
		AppliedDate:  now,
		LastUpdated:  now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, "", fmt.Errorf("failed to save candidate: %w", err)
	}

	posting.Applications++
	if err := s.postings.Put(ctx, *posting); err != nil {
		s.log.Warn("failed to update application count", "job_posting_id", posting.ID, "error", err)
	}
	return &c, rec.State(), nil
}

// Get returns one candidate.
func (s *Candidates) Get(ctx context.Context, id string) (*types.Candidate, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate: %w", err)
	}
	if c == nil {
		return nil, &NotFoundError{Entity: "candidate", ID: id}
	}
	return c, nil
}

// List returns candidates passing filter, latest applicants first.
func (s *Candidates) List(ctx context.Context, filter types.CandidateFilter) ([]types.Candidate, error) {
	if filter.Status != "" && filter.Status != "all" && !types.CandidateStatus(filter.Status).IsValid() {
		return nil, &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", filter.Status)}
	}
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	out := []types.Candidate{}
	for _, c := range all {
		if filter.Matches(c) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedDate.After(out[j].AppliedDate)
	})
	return out, nil
}

// UpdateStatus moves a candidate to status.
func (s *Candidates) UpdateStatus(ctx context.Context, id string, status types.CandidateStatus) (*types.Candidate, SyncState, error) {
	if !status.IsValid() {
		return nil, "", &ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", status)}
	}
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.setStatus(ctx, id, status)
	if err != nil {
		return nil, "", err
	}
	return c, rec.State(), nil
}

// setStatus applies the policy and saves. Callers hold the lock.
func (s *Candidates) setStatus(ctx context.Context, id string, status types.CandidateStatus) (*types.Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.policy(c.Status, status) {
		return nil, &InvariantError{Message: fmt.Sprintf("candidate %s cannot move from %s to %s", id, c.Status, status)}
	}
	from := c.Status
	c.Status = status
	c.LastUpdated = s.now()
	if err := s.repo.Put(ctx, *c); err != nil {
		return nil, fmt.Errorf("failed to save candidate: %w", err)
	}
	s.log.Info("candidate status changed", "id", id, "from", from, "to", status)
	return c, nil
}

// Accept moves the candidate to offered.
func (s *Candidates) Accept(ctx context.Context, id string) (*types.Candidate, SyncState, error) {
	return s.UpdateStatus(ctx, id, types.CandidateOffered)
}

// WaitingList parks the candidate on the waiting list.
func (s *Candidates) WaitingList(ctx context.Context, id string) (*types.Candidate, SyncState, error) {
	return s.UpdateStatus(ctx, id, types.CandidateWaitingList)
}

// Reject moves the candidate to rejected.
func (s *Candidates) Reject(ctx context.Context, id string) (*types.Candidate, SyncState, error) {
	return s.UpdateStatus(ctx, id, types.CandidateRejected)
}

// Rate sets the recruiter rating, 0 to 5.
func (s *Candidates) Rate(ctx context.Context, id string, rating int) (*types.Candidate, SyncState, error) {
	if rating < 0 || rating > 5 {
		return nil, "", &ValidationError{Field: "rating", Message: "must be between 0 and 5"}
	}
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	c.Rating = rating
	c.LastUpdated = s.now()
	if err := s.repo.Put(ctx, *c); err != nil {
		return nil, "", fmt.Errorf("failed to save candidate: %w", err)
	}
	return c, rec.State(), nil
}
