package recruitment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentdesk/internal/localstore"
	"github.com/jonathan/talentdesk/internal/types"
)

const janeCV = "Jane Smith\njane.smith@co.com\n555-123-4567\n3 years experience\nSkills: Python, React"

// steppingClock advances one minute per call so records get distinct,
// increasing timestamps.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func newTestService(t *testing.T, opts Options) (*Service, Repositories) {
	t.Helper()
	repos := LocalRepositories(localstore.NewMemoryStore())
	if opts.Clock == nil {
		opts.Clock = newSteppingClock().Now
	}
	return New(repos, opts), repos
}

func seedPosting(t *testing.T, svc *Service) *types.JobPosting {
	t.Helper()
	p, _, err := svc.JobPostings.Create(context.Background(), types.JobPostingInput{
		Title:       "Backend Engineer",
		Description: "Build Go services",
		Department:  "Engineering",
	})
	require.NoError(t, err)
	return p
}

func seedCandidate(t *testing.T, svc *Service) *types.Candidate {
	t.Helper()
	posting := seedPosting(t, svc)
	c, _, err := svc.Candidates.Create(context.Background(), types.CreateCandidateRequest{
		JobPostingID: posting.ID,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
	})
	require.NoError(t, err)
	return c
}
