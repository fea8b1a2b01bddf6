package db

import (
	"context"

	"github.com/jonathan/talentdesk/internal/types"
)

// ImportedCVRepository adapts the imported_cvs table to the record
// repository shape (All/Get/Put/Delete) used by the recruitment services.
type ImportedCVRepository struct{ db *DB }

// ImportedCVs returns the imported_cvs repository.
func (db *DB) ImportedCVs() *ImportedCVRepository { return &ImportedCVRepository{db: db} }

func (r *ImportedCVRepository) All(ctx context.Context) ([]types.ImportedCV, error) {
	return r.db.ListAllImportedCVs(ctx)
}

func (r *ImportedCVRepository) Get(ctx context.Context, id string) (*types.ImportedCV, error) {
	return r.db.GetImportedCV(ctx, id)
}

func (r *ImportedCVRepository) Put(ctx context.Context, cv types.ImportedCV) error {
	return r.db.UpsertImportedCV(ctx, &cv)
}

func (r *ImportedCVRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.db.DeleteImportedCV(ctx, id)
}

// CandidateRepository adapts the candidates table.
type CandidateRepository struct{ db *DB }

// Candidates returns the candidates repository.
func (db *DB) Candidates() *CandidateRepository { return &CandidateRepository{db: db} }

func (r *CandidateRepository) All(ctx context.Context) ([]types.Candidate, error) {
	return r.db.ListCandidates(ctx, types.CandidateFilter{})
}

func (r *CandidateRepository) Get(ctx context.Context, id string) (*types.Candidate, error) {
	return r.db.GetCandidate(ctx, id)
}

func (r *CandidateRepository) Put(ctx context.Context, c types.Candidate) error {
	return r.db.UpsertCandidate(ctx, &c)
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.db.DeleteCandidate(ctx, id)
}

// InterviewRepository adapts the interviews table.
type InterviewRepository struct{ db *DB }

// Interviews returns the interviews repository.
func (db *DB) Interviews() *InterviewRepository { return &InterviewRepository{db: db} }

func (r *InterviewRepository) All(ctx context.Context) ([]types.Interview, error) {
	return r.db.ListInterviews(ctx, "")
}

func (r *InterviewRepository) Get(ctx context.Context, id string) (*types.Interview, error) {
	return r.db.GetInterview(ctx, id)
}

func (r *InterviewRepository) Put(ctx context.Context, i types.Interview) error {
	return r.db.UpsertInterview(ctx, &i)
}

func (r *InterviewRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.db.DeleteInterview(ctx, id)
}

// JobPostingRepository adapts the job_postings table.
type JobPostingRepository struct{ db *DB }

// JobPostings returns the job_postings repository.
func (db *DB) JobPostings() *JobPostingRepository { return &JobPostingRepository{db: db} }

func (r *JobPostingRepository) All(ctx context.Context) ([]types.JobPosting, error) {
	return r.db.ListJobPostings(ctx, types.JobPostingFilter{})
}

func (r *JobPostingRepository) Get(ctx context.Context, id string) (*types.JobPosting, error) {
	return r.db.GetJobPosting(ctx, id)
}

func (r *JobPostingRepository) Put(ctx context.Context, p types.JobPosting) error {
	return r.db.UpsertJobPosting(ctx, &p)
}

func (r *JobPostingRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.db.DeleteJobPosting(ctx, id)
}
