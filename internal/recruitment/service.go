// Package recruitment holds the recruitment services: the imported-CV review
// queue, the candidate status machine, interview scheduling and the job
// posting registry. Services share one lock so each mutation is a single
// read-modify-write of whole records.
package recruitment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talentdesk/internal/localstore"
	"github.com/jonathan/talentdesk/internal/logging"
	"github.com/jonathan/talentdesk/internal/pipeline"
	"github.com/jonathan/talentdesk/internal/types"
	"github.com/jonathan/talentdesk/internal/uploads"
)

// Repositories bundles the record stores of every entity.
type Repositories struct {
	ImportedCVs Repository[types.ImportedCV]
	Candidates  Repository[types.Candidate]
	Interviews  Repository[types.Interview]
	JobPostings Repository[types.JobPosting]
}

// LocalRepositories binds each entity to its collection in store.
func LocalRepositories(store localstore.Store) Repositories {
	return Repositories{
		ImportedCVs: localstore.NewCollection[types.ImportedCV](store, localstore.KeyImportedCVs),
		Candidates:  localstore.NewCollection[types.Candidate](store, localstore.KeyCandidates),
		Interviews:  localstore.NewCollection[types.Interview](store, localstore.KeyInterviews),
		JobPostings: localstore.NewCollection[types.JobPosting](store, localstore.KeyJobPostings),
	}
}

// WithFallback puts remote in front of local for every entity.
func WithFallback(remote, local Repositories, log *logging.Logger) Repositories {
	return Repositories{
		ImportedCVs: NewFallback("importedCVs", remote.ImportedCVs, local.ImportedCVs, log),
		Candidates:  NewFallback("candidates", remote.Candidates, local.Candidates, log),
		Interviews:  NewFallback("interviews", remote.Interviews, local.Interviews, log),
		JobPostings: NewFallback("jobPostings", remote.JobPostings, local.JobPostings, log),
	}
}

// Options configures the services. Zero values pick sensible defaults.
type Options struct {
	Logger *logging.Logger
	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
	// Location interprets interview dates. Defaults to UTC.
	Location *time.Location
	// Policy gates candidate status changes. Defaults to types.AllowAny.
	Policy  types.TransitionPolicy
	Archive uploads.Archive
	Refiner pipeline.ProfileRefiner
}

// Service exposes the four recruitment services over shared repositories.
type Service struct {
	CVs         *CVStore
	Candidates  *Candidates
	Interviews  *Interviews
	JobPostings *JobPostings

	repos Repositories
	log   *logging.Logger
}

type base struct {
	mu    *sync.Mutex
	log   *logging.Logger
	clock func() time.Time
}

func (b *base) now() time.Time {
	return b.clock().UTC()
}

// New wires the services together.
func New(repos Repositories, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Policy == nil {
		opts.Policy = types.AllowAny
	}

	b := base{mu: &sync.Mutex{}, log: opts.Logger, clock: opts.Clock}
	candidates := &Candidates{base: b, repo: repos.Candidates, postings: repos.JobPostings, policy: opts.Policy}

	return &Service{
		CVs: &CVStore{
			base:    b,
			repo:    repos.ImportedCVs,
			archive: opts.Archive,
			refiner: opts.Refiner,
		},
		Candidates: candidates,
		Interviews: &Interviews{
			base:       b,
			repo:       repos.Interviews,
			candidates: repos.Candidates,
			cvs:        repos.ImportedCVs,
			policy:     opts.Policy,
			loc:        opts.Location,
		},
		JobPostings: &JobPostings{base: b, repo: repos.JobPostings},
		repos:       repos,
		log:         opts.Logger,
	}
}

// Now returns the service clock in UTC.
func (s *Service) Now() time.Time {
	return s.CVs.now()
}

type pusher interface {
	Push(ctx context.Context) (int, error)
}

// PushResult counts the records copied per collection.
type PushResult map[string]int

// Push copies locally saved records of every fallback repository to the
// remote backend. Collections without a remote are skipped.
func (s *Service) Push(ctx context.Context) (PushResult, error) {
	result := PushResult{}
	for name, repo := range map[string]any{
		localstore.KeyImportedCVs: s.repos.ImportedCVs,
		localstore.KeyCandidates:  s.repos.Candidates,
		localstore.KeyInterviews:  s.repos.Interviews,
		localstore.KeyJobPostings: s.repos.JobPostings,
	} {
		p, ok := repo.(pusher)
		if !ok {
			continue
		}
		n, err := p.Push(ctx)
		result[name] = n
		if err != nil {
			return result, err
		}
		s.log.Info("pushed local records", "collection", name, "count", n)
	}
	return result, nil
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
