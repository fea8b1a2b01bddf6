package recruitment

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jonathan/talentdesk/internal/types"
)

// Interviews schedules interviews for job-posting candidates and approved
// imported CVs. Completed and cancelled interviews never change again.
type Interviews struct {
	base
	repo       Repository[types.Interview]
	candidates Repository[types.Candidate]
	cvs        Repository[types.ImportedCV]
	policy     types.TransitionPolicy
	loc        *time.Location
}

// Schedule creates an interview in the scheduled state. For a job-posting
// candidate it also advances the candidate to interview_1, interview_2 or
// interview_3 depending on how many of their interviews were already
// completed. Nothing is written when validation fails, and the interview is
// removed again when the candidate cannot be advanced.
func (s *Interviews) Schedule(ctx context.Context, req types.ScheduleInterviewRequest) (*types.Interview, SyncState, error) {
	req.CandidateID = strings.TrimSpace(req.CandidateID)
	req.InterviewerID = strings.TrimSpace(req.InterviewerID)
	if err := req.Validate(); err != nil {
		return nil, "", fromValidator(err)
	}
	at, err := req.ScheduledAt(s.loc)
	if err != nil {
		return nil, "", &ValidationError{Field: "date", Message: err.Error()}
	}

	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate, name, err := s.resolveCandidate(ctx, req.CandidateID)
	if err != nil {
		return nil, "", err
	}

	var stage types.CandidateStatus
	if candidate != nil {
		completed, err := s.completedCount(ctx, candidate.ID)
		if err != nil {
			return nil, "", err
		}
		stage = types.InterviewStage(completed)
		if !s.policy(candidate.Status, stage) {
			return nil, "", &InvariantError{Message: fmt.Sprintf("candidate %s cannot move from %s to %s", candidate.ID, candidate.Status, stage)}
		}
	}

	interview := types.Interview{
		ID:              newID(),
		CandidateID:     req.CandidateID,
		CandidateName:   name,
		InterviewType:   req.InterviewType,
		Status:          types.InterviewScheduled,
		ScheduledDate:   at,
		DurationMinutes: req.DurationMinutes,
		InterviewerID:   req.InterviewerID,
		Location:        strings.TrimSpace(req.Location),
		ExpectedRating:  req.ExpectedRating,
		CreatedAt:       s.now(),
	}
	if interview.InterviewType == "" {
		interview.InterviewType = types.InterviewPhone
	}
	if interview.DurationMinutes == 0 {
		interview.DurationMinutes = types.DefaultInterviewDuration
	}
	if interview.Location == "" {
		interview.Location = types.DefaultInterviewLocation
	}

	if err := s.repo.Put(ctx, interview); err != nil {
		return nil, "", fmt.Errorf("failed to save interview: %w", err)
	}

	if candidate != nil && candidate.Status != stage {
		from := candidate.Status
		candidate.Status = stage
		candidate.LastUpdated = s.now()
		if err := s.candidates.Put(ctx, *candidate); err != nil {
			if _, derr := s.repo.Delete(ctx, interview.ID); derr != nil {
				s.log.Error("failed to roll back interview", "id", interview.ID, "error", derr)
			}
			return nil, "", fmt.Errorf("failed to advance candidate: %w", err)
		}
		s.log.Info("candidate status changed", "id", candidate.ID, "from", from, "to", stage)
	}

	s.log.Info("scheduled interview", "id", interview.ID, "candidate_id", interview.CandidateID,
		"scheduled_date", interview.ScheduledDate)
	return &interview, rec.State(), nil
}

// resolveCandidate looks the id up among job-posting candidates first, then
// among imported CVs, which must be approved.
func (s *Interviews) resolveCandidate(ctx context.Context, id string) (*types.Candidate, string, error) {
	c, err := s.candidates.Get(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load candidate: %w", err)
	}
	if c != nil {
		return c, c.FullName(), nil
	}

	cv, err := s.cvs.Get(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load imported CV: %w", err)
	}
	if cv == nil {
		return nil, "", &NotFoundError{Entity: "candidate", ID: id}
	}
	if cv.Status != types.ImportedCVApproved {
		return nil, "", &InvariantError{Message: fmt.Sprintf("imported CV %s must be approved before scheduling, it is %s", id, cv.Status)}
	}
	return nil, cv.FullName, nil
}

func (s *Interviews) completedCount(ctx context.Context, candidateID string) (int, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load interviews: %w", err)
	}
	n := 0
	for _, i := range all {
		if i.CandidateID == candidateID && i.Status == types.InterviewCompleted {
			n++
		}
	}
	return n, nil
}

// Get returns one interview.
func (s *Interviews) Get(ctx context.Context, id string) (*types.Interview, error) {
	i, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load interview: %w", err)
	}
	if i == nil {
		return nil, &NotFoundError{Entity: "interview", ID: id}
	}
	return i, nil
}

// ListByCandidate returns the candidate's interviews, newest scheduled date first.
func (s *Interviews) ListByCandidate(ctx context.Context, candidateID string) ([]types.Interview, error) {
	return s.list(ctx, func(i types.Interview) bool { return i.CandidateID == candidateID })
}

// List returns every interview, newest scheduled date first.
func (s *Interviews) List(ctx context.Context) ([]types.Interview, error) {
	return s.list(ctx, func(types.Interview) bool { return true })
}

func (s *Interviews) list(ctx context.Context, keep func(types.Interview) bool) ([]types.Interview, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load interviews: %w", err)
	}
	out := []types.Interview{}
	for _, i := range all {
		if keep(i) {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].ScheduledDate.After(out[b].ScheduledDate)
	})
	return out, nil
}

// Complete records rating and feedback on a scheduled interview.
func (s *Interviews) Complete(ctx context.Context, id string, rating int, feedback string) (*types.Interview, SyncState, error) {
	if rating < 1 || rating > 5 {
		return nil, "", &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	return s.finish(ctx, id, types.InterviewCompleted, func(i *types.Interview) {
		i.Rating = rating
		i.Feedback = feedback
	})
}

// Cancel cancels a scheduled interview.
func (s *Interviews) Cancel(ctx context.Context, id string) (*types.Interview, SyncState, error) {
	return s.finish(ctx, id, types.InterviewCancelled, nil)
}

func (s *Interviews) finish(ctx context.Context, id string, status types.InterviewStatus, apply func(*types.Interview)) (*types.Interview, SyncState, error) {
	ctx, rec := trackSync(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	i, err := s.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if i.Status != types.InterviewScheduled {
		return nil, "", &InvariantError{Message: fmt.Sprintf("interview %s is %s and can no longer change", id, i.Status)}
	}
	i.Status = status
	if apply != nil {
		apply(i)
	}
	if err := s.repo.Put(ctx, *i); err != nil {
		return nil, "", fmt.Errorf("failed to save interview: %w", err)
	}
	s.log.Info("interview finished", "id", id, "status", status)
	return i, rec.State(), nil
}
