package recruitment

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/talentdesk/internal/types"
)

// JobPostings is the registry of positions candidates apply to.
type JobPostings struct {
	base
	repo Repository[types.JobPosting]
}

// Create publishes a posting. Status defaults to open and position type to
// full time.
func (s *JobPostings) Create(ctx context.Context, in types.JobPostingInput) (*types.JobPosting, SyncState, error) {
	if err := validatePosting(&in); err != nil {
		return nil, "", err
	}
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	p := types.JobPosting{
		ID:         newID(),
		PostedDate: s.now(),
		Status:     types.JobPostingOpen,
	}
	applyPosting(&p, in)
	if p.PositionType == "" {
		p.PositionType = types.PositionFullTime
	}

	if err := s.repo.Put(ctx, p); err != nil {
		return nil, "", fmt.Errorf("failed to save job posting: %w", err)
	}
	s.log.Info("created job posting", "id", p.ID, "title", p.Title)
	return &p, rec.State(), nil
}

// Update replaces the editable fields of a posting. An empty status or
// position type keeps the current value.
func (s *JobPostings) Update(ctx context.Context, id string, in types.JobPostingInput) (*types.JobPosting, SyncState, error) {
	if err := validatePosting(&in); err != nil {
		return nil, "", err
	}
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	applyPosting(p, in)
	if err := s.repo.Put(ctx, *p); err != nil {
		return nil, "", fmt.Errorf("failed to save job posting: %w", err)
	}
	return p, rec.State(), nil
}

// Delete removes a posting.
func (s *JobPostings) Delete(ctx context.Context, id string) (SyncState, error) {
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to delete job posting: %w", err)
	}
	if !deleted {
		return "", &NotFoundError{Entity: "job posting", ID: id}
	}
	return rec.State(), nil
}

// Get returns one posting.
func (s *JobPostings) Get(ctx context.Context, id string) (*types.JobPosting, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load job posting: %w", err)
	}
	if p == nil {
		return nil, &NotFoundError{Entity: "job posting", ID: id}
	}
	return p, nil
}

// List returns postings passing filter, newest first.
func (s *JobPostings) List(ctx context.Context, filter types.JobPostingFilter) ([]types.JobPosting, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load job postings: %w", err)
	}
	out := []types.JobPosting{}
	for _, p := range all {
		if filter.Matches(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostedDate.After(out[j].PostedDate)
	})
	return out, nil
}

func validatePosting(in *types.JobPostingInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Department = strings.TrimSpace(in.Department)
	if err := in.Validate(); err != nil {
		if errors.Is(err, types.ErrSalaryRange) {
			return &ValidationError{Field: "salary_range_min", Message: "must not exceed salary_range_max"}
		}
		return fromValidator(err)
	}
	return nil
}

func applyPosting(p *types.JobPosting, in types.JobPostingInput) {
	p.Title = in.Title
	p.Description = in.Description
	p.Department = in.Department
	p.Requirements = in.Requirements
	p.SalaryRangeMin = in.SalaryRangeMin
	p.SalaryRangeMax = in.SalaryRangeMax
	p.ClosingDate = in.ClosingDate
	if in.PositionType != "" {
		p.PositionType = in.PositionType
	}
	if in.Status != "" {
		p.Status = in.Status
	}
}
